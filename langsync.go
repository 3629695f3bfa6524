// Package langsync is the Go client SDK for the LangSync translation API.
//
// The client fetches translation dictionaries and project metadata from the
// hosted API with request deduplication, per-attempt timeouts, bounded
// retries, and TTL-based response caching.
//
// Basic usage:
//
//	import (
//	    langsync "github.com/YonasValentin/langsync.xyz-sub000"
//	)
//
//	func main() {
//	    client, err := langsync.NewClient(langsync.Config{
//	        APIKey:    os.Getenv("LANGSYNC_API_KEY"),
//	        ProjectID: "my-project",
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    dict, err := client.GetLanguageTranslations(context.Background(), "es")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(dict.T("common.greeting", map[string]string{"name": "Ana"}))
//	}
//
// The loader subpackage resolves dictionaries from bundled data, on-device
// storage, or the network, with staleness-triggered background refresh.
package langsync
