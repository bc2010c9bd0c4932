package common

// error codes returned in API responses
const (
	ReadRequestErr    = 1
	InputParamErr     = 1000
	ExtractErr        = 1001
	ResolveErr        = 1002
	SearchUpstreamErr = 1003
	OCRUpstreamErr    = 1004
	ScrapeErr         = 1005
	WeatherErr        = 1006
	DecisionNotFound  = 1007
	StoreErr          = 1008
	UnmarshalErr      = 1009
)
