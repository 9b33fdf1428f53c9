package registry_test

import (
	"context"
	"net/http"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	"github.com/hubsync/hubsync/internal/meta"
	"github.com/hubsync/hubsync/pkg/registry"
	"github.com/hubsync/hubsync/pkg/types"
)

var _ = ginkgo.Describe("the tags client", func() {
	var server *ghttp.Server

	ginkgo.BeforeEach(func() {
		server = ghttp.NewServer()
	})

	ginkgo.AfterEach(func() {
		server.Close()
	})

	page := func(next *string, results ...map[string]any) map[string]any {
		return map[string]any{
			"count":   len(results),
			"next":    next,
			"results": results,
		}
	}

	tag := func(name, digest string) map[string]any {
		return map[string]any{
			"name":   name,
			"digest": digest,
			"images": []map[string]any{
				{"os": "linux", "architecture": "amd64"},
			},
		}
	}

	ginkgo.When("fetching tags of an official image", func() {
		ginkgo.It("should query the default library with page size and recency ordering", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(
					http.MethodGet,
					"/v2/repositories/library/nginx/tags",
					"ordering=last_updated&page_size=100",
				),
				ghttp.RespondWithJSONEncoded(http.StatusOK, page(nil,
					tag("latest", "sha256:abc"),
					tag("1.25", "sha256:abc"),
				)),
			))

			client := registry.NewClient(server.URL())
			listing, err := client.FetchTags(context.Background(), types.NewImageRef("", "nginx"))

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(listing).To(gomega.HaveLen(2))
			gomega.Expect(listing[0].Name).To(gomega.Equal("latest"))
			gomega.Expect(listing[0].Digest).To(gomega.Equal("sha256:abc"))
			gomega.Expect(listing[0].Platforms).To(gomega.Equal([]types.Platform{
				{OS: "linux", Architecture: "amd64"},
			}))
		})
	})

	ginkgo.When("identifying itself to the registry", func() {
		ginkgo.It("should send a user agent carrying the build version", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyHeaderKV("User-Agent", "hubsync/"+meta.Version),
				ghttp.RespondWithJSONEncoded(http.StatusOK, page(nil)),
			))

			client := registry.NewClient(server.URL())
			_, err := client.FetchTags(context.Background(), types.NewImageRef("", "nginx"))

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})
	})

	ginkgo.When("the listing spans multiple pages", func() {
		ginkgo.It("should follow next links and concatenate all pages", func() {
			nextURL := server.URL() + "/v2/repositories/grafana/agent/tags?page=2"
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest(http.MethodGet, "/v2/repositories/grafana/agent/tags"),
					ghttp.RespondWithJSONEncoded(http.StatusOK, page(&nextURL,
						tag("v0.40.0", "sha256:aa"),
					)),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest(http.MethodGet, "/v2/repositories/grafana/agent/tags", "page=2"),
					ghttp.RespondWithJSONEncoded(http.StatusOK, page(nil,
						tag("v0.39.0", "sha256:bb"),
					)),
				),
			)

			client := registry.NewClient(server.URL())
			listing, err := client.FetchTags(
				context.Background(),
				types.NewImageRef("grafana", "agent"),
			)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(listing).To(gomega.HaveLen(2))
			gomega.Expect(listing[0].Name).To(gomega.Equal("v0.40.0"))
			gomega.Expect(listing[1].Name).To(gomega.Equal("v0.39.0"))
			gomega.Expect(server.ReceivedRequests()).To(gomega.HaveLen(2))
		})
	})

	ginkgo.When("the repository does not exist", func() {
		ginkgo.It("should return a not-found error", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusNotFound, "{}"))

			client := registry.NewClient(server.URL())
			_, err := client.FetchTags(context.Background(), types.NewImageRef("", "missing"))

			gomega.Expect(err).To(gomega.MatchError(registry.ErrRegistryNotFound))
		})
	})

	ginkgo.When("the registry answers with an unexpected status", func() {
		ginkgo.It("should return an invalid-response error", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusInternalServerError, "oops"))

			client := registry.NewClient(server.URL())
			_, err := client.FetchTags(context.Background(), types.NewImageRef("", "nginx"))

			gomega.Expect(err).To(gomega.MatchError(registry.ErrRegistryResponseInvalid))
		})
	})

	ginkgo.When("the payload does not decode as a tag listing", func() {
		ginkgo.It("should return an invalid-response error", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "not json"))

			client := registry.NewClient(server.URL())
			_, err := client.FetchTags(context.Background(), types.NewImageRef("", "nginx"))

			gomega.Expect(err).To(gomega.MatchError(registry.ErrRegistryResponseInvalid))
		})
	})

	ginkgo.When("the registry cannot be reached", func() {
		ginkgo.It("should return an unreachable error", func() {
			client := registry.NewClient("http://127.0.0.1:1")
			_, err := client.FetchTags(context.Background(), types.NewImageRef("", "nginx"))

			gomega.Expect(err).To(gomega.MatchError(registry.ErrRegistryUnreachable))
		})
	})
})
