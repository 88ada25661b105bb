package events

// Kafka topics carrying the avro RecordEvent of each stored entity.
const (
	TopicResidents  = "profiling.residents"
	TopicHouseholds = "profiling.households"
	TopicFamilies   = "profiling.families"
	TopicBusinesses = "profiling.businesses"
	TopicNCDRecords = "profiling.ncd_records"
	TopicTBRecords  = "profiling.tb_records"
	TopicSessions   = "profiling.sessions"
	TopicAccounts   = "profiling.accounts"
)

// HistoryTopics are replicated into the record history. Account events
// carry credentials and stay out of it.
func HistoryTopics() []string {
	return []string{
		TopicResidents,
		TopicHouseholds,
		TopicFamilies,
		TopicBusinesses,
		TopicNCDRecords,
		TopicTBRecords,
		TopicSessions,
	}
}
