// Package registry fetches tag metadata from a Docker Hub compatible tags
// API and memoizes the results per image identity. One listing per identity
// is the contract the push engine's alias resolution depends on.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/hubsync/hubsync/internal/meta"
	"github.com/hubsync/hubsync/pkg/types"
)

// DefaultBaseURL is the Docker Hub API endpoint used when no registry URL is
// configured.
const DefaultBaseURL = "https://hub.docker.com"

// defaultLibrary is the namespace Docker Hub files official images under;
// it stands in for an absent library in API paths only, never in identities.
const defaultLibrary = "library"

// pageSize is the page size requested from the tags endpoint. The API caps
// pages at 100 entries, so larger listings arrive via next links.
const pageSize = "100"

// userAgent identifies hubsync in requests to the tags API, carrying the
// version injected at build time.
func userAgent() string {
	return "hubsync/" + meta.Version
}

// tagsPage is the paginated JSON shape of one tags API response.
type tagsPage struct {
	Count   int                   `json:"count"`
	Next    *string               `json:"next"`
	Results []types.TagDescriptor `json:"results"`
}

// Client queries a Docker Hub compatible tags API.
type Client struct {
	baseURL string
	http    *resty.Client
}

// NewClient creates a tags API client for baseURL, falling back to Docker
// Hub when baseURL is empty.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent())

	return &Client{baseURL: baseURL, http: httpClient}
}

// FetchTags returns every tag descriptor the registry knows for ref,
// most recently updated first. The endpoint paginates; all pages are
// followed and concatenated into one listing, because alias resolution over
// a truncated listing would silently miss digest siblings.
func (c *Client) FetchTags(
	ctx context.Context,
	ref types.ImageRef,
) ([]types.TagDescriptor, error) {
	library := defaultLibrary
	if ref.Library != nil {
		library = *ref.Library
	}

	pageURL := fmt.Sprintf("%s/v2/repositories/%s/%s/tags", c.baseURL, library, ref.Repo)

	fields := logrus.Fields{"image": ref.String()}

	var descriptors []types.TagDescriptor

	for page := 1; pageURL != ""; page++ {
		request := c.http.R().SetContext(ctx)
		if page == 1 {
			request.SetQueryParams(map[string]string{
				"page_size": pageSize,
				"ordering":  "last_updated",
			})
		}

		response, err := request.Get(pageURL)
		if err != nil {
			return nil, fmt.Errorf(
				"%w: fetching tags for %s: %w",
				ErrRegistryUnreachable,
				ref,
				err,
			)
		}

		switch response.StatusCode() {
		case http.StatusOK:
		case http.StatusNotFound:
			return nil, fmt.Errorf("%w: %s", ErrRegistryNotFound, ref)
		default:
			return nil, fmt.Errorf(
				"%w: unexpected status %d for %s",
				ErrRegistryResponseInvalid,
				response.StatusCode(),
				ref,
			)
		}

		var listing tagsPage
		if err := json.Unmarshal(response.Body(), &listing); err != nil {
			return nil, fmt.Errorf(
				"%w: decoding tags for %s: %w",
				ErrRegistryResponseInvalid,
				ref,
				err,
			)
		}

		descriptors = append(descriptors, listing.Results...)

		pageURL = ""
		if listing.Next != nil {
			pageURL = *listing.Next
		}

		logrus.WithFields(fields).WithFields(logrus.Fields{
			"page": page,
			"tags": len(descriptors),
		}).Debug("Fetched tag listing page")
	}

	return descriptors, nil
}
