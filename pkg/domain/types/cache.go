package types

type CacheKey string

func (x CacheKey) String() string { return string(x) }

type CacheBackend string

const (
	CacheBackendMemory    CacheBackend = "memory"
	CacheBackendRedis     CacheBackend = "redis"
	CacheBackendFirestore CacheBackend = "firestore"
)
