// Command catalog_lookup fetches a single detail page from the Biblioteca
// Nacional catalog and prints the extracted record as JSON.
//
// Usage:
//
//	catalog_lookup -url https://acervo.bn.gov.br/Sophia_web/acervo/detalhe/1739805
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/lmacedo/biblioteca/internal/catalog"
)

func main() {
	url := flag.String("url", "", "Catalog detail page URL (required)")
	baseURL := flag.String("base-url", catalog.DefaultBaseURL, "Catalog host used to resolve cover image paths")
	timeout := flag.Duration("timeout", catalog.DefaultFetchTimeout, "Page fetch timeout")
	flag.Parse()

	if *url == "" {
		log.Fatalf("Error: -url is required")
	}

	fetcher := catalog.NewHTTPFetcher(*timeout)
	client := catalog.NewClient(fetcher, *baseURL)

	record, err := client.Lookup(context.Background(), *url)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Println(string(out))
}
