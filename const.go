package match

// EngineVersion is the current version of the matching engine.
const EngineVersion = "v1.0.0"

// DefaultPoolCapacity is a stock slab size to pass to NewOrderBook, which
// always takes an explicit capacity; cmd/lobcli uses it as the default
// of its -pool-capacity flag. Matches the reference configuration
// range (10^5-10^6 resting orders) from the design notes.
const DefaultPoolCapacity = 1_000_000
