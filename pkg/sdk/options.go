package eventdex

import "go.uber.org/zap"

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	username string
	password string
	db       int

	indexName    string
	maxBatchSize int

	minScoreRID      float64
	minScoreDOCID    float64
	minPrefixScore   float64
	maxPrefixResults int

	logger *zap.Logger
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithAddrs configures multiple connection addresses.
func WithAddrs(addrs ...string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = addrs
	})
}

// WithAuth sets database credentials.
func WithAuth(username, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.username = username
		c.password = password
	})
}

// WithDB selects a logical database.
func WithDB(db int) Option {
	return optionFunc(func(c *clientConfig) {
		c.db = db
	})
}

// WithIndexName overrides the default "events" index name.
func WithIndexName(name string) Option {
	return optionFunc(func(c *clientConfig) {
		c.indexName = name
	})
}

// WithMaxBatchSize sets the ingestion batch ceiling.
func WithMaxBatchSize(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxBatchSize = n
	})
}

// WithThresholds overrides the cascade score cutoffs. Zero values keep
// the built-in defaults.
func WithThresholds(minScoreRID, minScoreDOCID, minPrefixScore float64, maxPrefixResults int) Option {
	return optionFunc(func(c *clientConfig) {
		c.minScoreRID = minScoreRID
		c.minScoreDOCID = minScoreDOCID
		c.minPrefixScore = minPrefixScore
		c.maxPrefixResults = maxPrefixResults
	})
}

// WithLogger sets the client logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}
