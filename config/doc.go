// Package config loads graphalyze settings.
//
// Precedence, lowest first: Default(), the TOML file, environment variables,
// then command-line flags (applied by the CLI). The file has the sections
// [log], [engine], [limits], [cache], [cache.redis] and [server]:
//
//	[log]
//	level = "info"
//
//	[engine]
//	parallel = true
//	mst_method = "kruskal"
//	negative_cycle_source = -1
//
//	[limits]
//	max_nodes = 2000        # dense n² outputs; hard ceiling 200000
//	max_edges = 0
//	max_body_bytes = 67108864
//
//	[cache]
//	backend = "file"
//	dir = "/var/cache/graphalyze"
//	ttl = "24h"
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//	read_timeout = "30s"
//	write_timeout = "2m"
//
// Unknown keys are rejected so typos surface at startup.
package config
