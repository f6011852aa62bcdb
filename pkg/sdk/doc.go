// Package eventdex provides an embedded Go client for the eventdex
// identifier resolver backed by Redis with the search module.
//
// The client wires the full resolution pipeline in-process: connect it
// to a Redis instance, load event documents, and resolve identifier
// fragments or free-text queries without running the HTTP server.
//
//	client, _ := eventdex.New(ctx, eventdex.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	_ = client.EnsureIndex(ctx)
//	_, _ = client.IngestEvents(ctx, events)
//
//	match, _ := client.SearchRID(ctx, "RID-10")
//	fmt.Println(match.MatchType, match.Confidence, match.TotalCount)
package eventdex
