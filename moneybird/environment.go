package moneybird

// Environment names the base URL of the Moneybird REST API.
//
// Tests point an Environment at a local test server; production code
// uses Prod.
type Environment string

const (
	Prod Environment = "https://moneybird.com/api"
)

// APIVersion is the versioned path segment of every endpoint.
const APIVersion = "v2"
