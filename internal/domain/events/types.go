// Package events - types.go
package events

// QueueNotice is emitted after every mutating seat operation on a game.
type QueueNotice struct {
	GameID        string   `json:"gameId"`
	Operation     string   `json:"operation"` // INIT, JOIN, ADVANCE, FINISH
	Seats         []int    `json:"seatsAffected"`
	Finished      []string `json:"finishedIdentities"`
	NewOccupants  []string `json:"newOccupants"`
	WaitingCounts []int    `json:"newWaitingCounts"`
}

// GameNotice is emitted when a game enters or leaves the directory.
type GameNotice struct {
	Label        string `json:"label"` // CREATE or DELETE
	GameID       string `json:"gameId"`
	MoreRecentID string `json:"moreRecentGameId,omitempty"`
	LessRecentID string `json:"lessRecentGameId,omitempty"`
}

// LeaderboardNotice carries the board's three names after a score lands.
type LeaderboardNotice struct {
	GameID     string `json:"gameId"`
	PlayerName string `json:"playerName"`
	First      string `json:"firstPlaceName"`
	Second     string `json:"secondPlaceName"`
	Third      string `json:"thirdPlaceName"`
}
