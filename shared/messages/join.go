package messages

// JoinRequest is sent by a viewer after connecting to subscribe to the feed.
type JoinRequest struct {
	Version    string
	ClientName string
}

// JoinAccepted is sent by the server when a viewer's join request is accepted.
type JoinAccepted struct {
	ServerName     string
	FeedIntervalMs int // nominal broadcast interval, informational only
	TrackCount     int
}

// JoinRejected is sent by the server when a viewer's join request is rejected.
type JoinRejected struct {
	Reason string
}
