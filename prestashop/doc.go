// Package prestashop provides a read-only client for the PrestaShop
// webservice API.
//
// The webservice speaks XML over HTTP and authenticates with a per-shop
// key. This package implements a clean, idiomatic Go client for browsing
// the catalog: products, combinations, images, stock and related
// collections.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: The authenticated HTTP layer with request deduplication
//   - Resource: A typed accessor for one collection of remote objects
//   - Descriptor: Static per-kind configuration (names, paths, strategies)
//   - Model: An immutable attribute bag wrapping one remote object
//   - Errors: Structured error types for better error handling
//
// # Usage
//
// Create a new client with your shop URL and webservice key:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := prestashop.New(
//		"https://shop.example.com",
//		"your-webservice-key",
//		logger,
//		prestashop.WithTimeout(30*time.Second),
//		prestashop.WithLanguages(map[string]int{"en": 1, "fr": 2}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Fetch every product
//	ctx := context.Background()
//	products, err := client.Resource("products")
//	if err != nil {
//		log.Fatal(err)
//	}
//	models, err := products.List(ctx, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Request Deduplication
//
// Identical GET requests issued while one is still in flight share a
// single underlying HTTP call and settle with the same response. The
// deduplication window ends the moment the call settles; nothing is
// cached afterwards. Collection listing fans out one request per item,
// so overlapping List calls converge on the same item fetches instead of
// hammering the shop.
//
// # Error Handling
//
// The package defines several error types:
//
//   - ErrUnknownResource: No kind registered under the requested name
//   - ErrUnknownLanguage: ISO code absent from the configured language map
//   - ErrMissingNode: Expected element absent from an XML payload
//   - StatusError: Non-2xx webservice responses with status classification
//   - RequestError: Request construction failures (see Resource.Get)
//
// Status errors include helper methods for classification:
//
//	var statusErr *prestashop.StatusError
//	if errors.As(err, &statusErr) {
//		if statusErr.IsUnauthorized() {
//			// Handle auth failure
//		}
//	}
package prestashop
