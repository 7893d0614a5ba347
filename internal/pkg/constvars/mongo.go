package constvars

const (
	MongoCollectionUsers      = "users"
	MongoCollectionTodos      = "todos"
	MongoCollectionTimeBlocks = "timeBlocks"
)
