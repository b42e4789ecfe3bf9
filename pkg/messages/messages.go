package messages

const (
	BadStatusCodeMsg = "API returned status code %d on URL %s"
	FailedToParseMsg = "failed to parse API response"
	MatchNotFound    = "match not found"
	PlayerNotFound   = "summoner not found"
	RequestFailedMsg = "API request failed on URL %s"
)
