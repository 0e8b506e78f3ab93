package ops

const (
	defaultSeed        = 42
	defaultPricePoints = 1000
	defaultBookPoints  = 1000
)

// The on-the-run treasury curve as of the reference data snapshot.
var defaultProducts = []ProductConfig{
	{CUSIP: "9128283H1", Ticker: "US2Y", Coupon: 0.01750, Maturity: "2025-12-30"},
	{CUSIP: "9128283L2", Ticker: "US3Y", Coupon: 0.01875, Maturity: "2026-12-30"},
	{CUSIP: "912828M80", Ticker: "US5Y", Coupon: 0.02000, Maturity: "2028-12-30"},
	{CUSIP: "9128283J7", Ticker: "US7Y", Coupon: 0.02125, Maturity: "2030-12-30"},
	{CUSIP: "9128283F5", Ticker: "US10Y", Coupon: 0.02250, Maturity: "2033-12-30"},
	{CUSIP: "912810TW8", Ticker: "US20Y", Coupon: 0.02500, Maturity: "2043-12-30"},
	{CUSIP: "912810RZ3", Ticker: "US30Y", Coupon: 0.02750, Maturity: "2053-12-30"},
}

// Static PV01 coefficients. The 20Y has no entry and carries zero risk.
var defaultPV01 = map[string]string{
	"9128283H1": "0.01948992",
	"9128283L2": "0.02865304",
	"912828M80": "0.04581119",
	"9128283J7": "0.06127718",
	"9128283F5": "0.08161449",
	"912810RZ3": "0.15013155",
}

var defaultSectors = []SectorConfig{
	{Name: "FrontEnd", Products: []string{"9128283H1", "9128283L2"}},
	{Name: "Belly", Products: []string{"912828M80", "9128283J7", "9128283F5"}},
	{Name: "LongEnd", Products: []string{"912810TW8", "912810RZ3"}},
}
