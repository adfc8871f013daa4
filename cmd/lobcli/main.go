// Command lobcli drives a single match.OrderBook from a stream of
// newline-delimited JSON order events and prints the trades each event
// produces. Event sourcing and result reporting live here, outside the
// core, so the core itself stays free of I/O.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"

	match "github.com/WataHata/OrderTradeBook"
)

// event is one line of the input stream: an add, cancel, or modify,
// tagged by Op.
type event struct {
	Op    string         `json:"op"` // "add" | "cancel" | "modify"
	ID    match.OrderID  `json:"id"`
	Side  string         `json:"side,omitempty"` // "buy" | "sell"
	Type  string         `json:"type,omitempty"` // "gtc" | "fak"
	Price match.Price    `json:"price,omitempty"`
	Qty   match.Quantity `json:"qty,omitempty"`
}

func main() {
	capacity := flag.Int("pool-capacity", match.DefaultPoolCapacity, "fixed order pool capacity")
	input := flag.String("input", "", "newline-delimited JSON event file (default: stdin)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	r := io.Reader(os.Stdin)
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			logger.Error("open input", "err", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	book := match.NewOrderBook(*capacity)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var ev event
		if err := json.Unmarshal(line, &ev); err != nil {
			logger.Error("malformed event", "err", err, "line", string(line))
			continue
		}
		handle(logger, book, ev)
	}
	if err := scanner.Err(); err != nil {
		logger.Error("read input", "err", err)
		os.Exit(1)
	}
}

func handle(logger *slog.Logger, book *match.OrderBook, ev event) {
	side := parseSide(ev.Side)

	switch ev.Op {
	case "add":
		trades := book.Add(parseType(ev.Type), ev.ID, side, ev.Price, ev.Qty)
		emit(logger, trades)
	case "cancel":
		book.Cancel(ev.ID)
	case "modify":
		trades := book.Modify(ev.ID, side, ev.Price, ev.Qty)
		emit(logger, trades)
	default:
		logger.Error("unknown op", "op", ev.Op)
	}
}

func emit(logger *slog.Logger, trades []match.Trade) {
	for _, tr := range trades {
		b, err := json.Marshal(tr)
		if err != nil {
			logger.Error("marshal trade", "err", err)
			continue
		}
		os.Stdout.Write(b)
		os.Stdout.Write([]byte("\n"))
	}
}

func parseSide(s string) match.Side {
	if s == "sell" {
		return match.Sell
	}
	return match.Buy
}

func parseType(s string) match.OrderType {
	if s == "fak" {
		return match.FillAndKill
	}
	return match.GoodTillCancel
}
