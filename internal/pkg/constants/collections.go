package constants

// Collection names are the lowercase entity type names.
const (
	CollectionTruckerUser  = "truckeruser"
	CollectionCafe         = "cafe"
	CollectionQuizQuestion = "quizquestion"
	CollectionNewsItem     = "newsitem"
	CollectionGuideEntry   = "guideentry"
	CollectionTruckHistory = "truckhistory"
	CollectionChatMessage  = "chatmessage"
)

// Default listing limits per endpoint
const (
	DefaultQuizLimit    = 10
	DefaultCafeLimit    = 30
	DefaultHistoryLimit = 20
	DefaultNewsLimit    = 10
	GuideLimit          = 50
	DefaultChatLimit    = 25
)
