// internal/event/types.go
package event

const (
	WaveStarted       EventType = "WaveStarted"       // Data: 0-based wave index
	WaveEnded         EventType = "WaveEnded"         // Data: 0-based wave index
	AllWavesCompleted EventType = "AllWavesCompleted"
	EnemySpawned      EventType = "EnemySpawned"      // Data: types.EntityID
	EnemyDestroyed    EventType = "EnemyDestroyed"    // Data: points awarded (int)
	EnemyReachedBase  EventType = "EnemyReachedBase"  // Data: damage (int)
	TowerActivated    EventType = "TowerActivated"    // Data: tower id (string)
	TowerMoving       EventType = "TowerMoving"       // Data: tower id (string)
	UpgradePurchased  EventType = "UpgradePurchased"  // Data: track id (string)
	GameOver          EventType = "GameOver"
	GameWon           EventType = "GameWon"
)
