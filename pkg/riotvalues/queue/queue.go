package queuevalues

// Queue ids as used by the match data.
const (
	RankedSolo = 420
	RankedFlex = 440
	Normal     = 400
	Aram       = 450
)

var queueNames = map[int]string{
	400: "Normal Draft",
	420: "Ranked Solo/Duo",
	430: "Normal Blind",
	440: "Ranked Flex",
	450: "ARAM",
	490: "Quickplay",
	700: "Clash",
	900: "ARURF",
}

// QueueName returns a human readable name for a queue id.
func QueueName(queueId int) string {
	if name, ok := queueNames[queueId]; ok {
		return name
	}
	return "Other"
}
