package constants

// Centralized constants for env keys, routes and API error messages.
const (
	// Environment variable keys
	EnvConfigPath = "ARENA_CONFIG"
	EnvDBPath     = "ARENA_DB"
	EnvAddress    = "ARENA_ADDR"

	// Defaults
	DefaultConfigPath = "./arena_config.json"
	DefaultDBPath     = "./data/arena.db"
	DefaultAddress    = ":8080"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteVersion       = "/version"
	RouteCatalog       = "/catalog"
	RouteLeaderboard   = "/leaderboard"
	RouteAgentByID     = "/agents/:agentID"
	RouteFights        = "/fights"
	RouteFightByID     = "/fights/:fightID"
	RouteFightAction   = "/fights/:fightID/action"
	RouteFightNextRound = "/fights/:fightID/next-round"
	RouteFightSpectate = "/fights/:fightID/spectate"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common log field names
const (
	LogFieldAddr    = "addr"
	LogFieldFightID = "fight_id"
	LogFieldAgentID = "agent_id"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest     = "Invalid request"
	ErrFightNotFound      = "Fight not found"
	ErrFightNotInProgress = "Fight is not in progress"
	ErrRoundNotOver       = "Round is not over"
	ErrNotParticipant     = "Agent is not a participant in this fight"
	ErrUnknownAction      = "Unknown action name"
	ErrSameAgent          = "An agent cannot fight itself"
	ErrAgentNotFound      = "Agent not found"
	ErrFailedCreateFight  = "Failed to create fight"
	ErrFailedLeaderboard  = "Failed to fetch leaderboard"
	ErrFailedSubmitAction = "Failed to store action"
)
