package app

import "math/rand"

type Headline struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

var Headlines = []Headline{
	{Tag: "ALGO", Text: "Models confirm friends talking is still an illiquid asset class."},
	{Tag: "EARN", Text: "Earnings call delayed pending someone finding the group chat link."},
	{Tag: "HALT", Text: "PODCST halted pending fresh episode guidance."},
	{Tag: "MACRO", Text: "Rates unchanged. Vibes slightly higher."},
	{Tag: "RISK", Text: "Risk team submits memo titled this is a joke right."},
	{Tag: "FLOW", Text: "Unusual options flow detected in silence futures."},
	{Tag: "GUID", Text: "Management guides maybe next week for episode release."},
}

func RandomHeadline() Headline {
	return Headlines[rand.Intn(len(Headlines))]
}

type TickerEntry struct {
	Symbol string `json:"symbol"`
	Value  string `json:"value"`
	Class  string `json:"class"`
}

var Ticker = []TickerEntry{
	{Symbol: "PODCST", Value: "+12.4%", Class: "up"},
	{Symbol: "SILNCE", Value: "+999.0%", Class: "up"},
	{Symbol: "HYPE", Value: "-2.1%", Class: "down"},
	{Symbol: "VIBES", Value: "+0.7%", Class: "up"},
	{Symbol: "NFA", Value: "NOT ADVICE", Class: "flat"},
}
