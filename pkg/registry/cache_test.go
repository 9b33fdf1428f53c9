package registry_test

import (
	"context"
	"errors"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/hubsync/hubsync/pkg/registry"
	"github.com/hubsync/hubsync/pkg/types"
)

// countingLister serves a fixed listing and counts fetches per identity.
type countingLister struct {
	listing []types.TagDescriptor
	err     error
	counts  map[string]int
}

func (l *countingLister) FetchTags(
	_ context.Context,
	ref types.ImageRef,
) ([]types.TagDescriptor, error) {
	l.counts[ref.String()]++

	return l.listing, l.err
}

var _ = ginkgo.Describe("the tag response cache", func() {
	var lister *countingLister

	ginkgo.BeforeEach(func() {
		lister = &countingLister{
			listing: []types.TagDescriptor{{Name: "latest", Digest: "sha256:abc"}},
			counts:  make(map[string]int),
		}
	})

	ginkgo.It("should fetch each identity at most once", func() {
		cache := registry.NewCache(lister)
		ref := types.NewImageRef("", "nginx")

		for range 3 {
			listing, err := cache.FetchTags(context.Background(), ref)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(listing).To(gomega.Equal(lister.listing))
		}

		gomega.Expect(lister.counts["nginx"]).To(gomega.Equal(1))
	})

	ginkgo.It("should fetch distinct identities independently", func() {
		cache := registry.NewCache(lister)

		_, err := cache.FetchTags(context.Background(), types.NewImageRef("", "nginx"))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		_, err = cache.FetchTags(context.Background(), types.NewImageRef("grafana", "agent"))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		gomega.Expect(lister.counts["nginx"]).To(gomega.Equal(1))
		gomega.Expect(lister.counts["grafana/agent"]).To(gomega.Equal(1))
	})

	ginkgo.It("should not cache failed fetches", func() {
		lister.err = errors.New("transient")
		cache := registry.NewCache(lister)
		ref := types.NewImageRef("", "nginx")

		_, err := cache.FetchTags(context.Background(), ref)
		gomega.Expect(err).To(gomega.HaveOccurred())

		lister.err = nil

		listing, err := cache.FetchTags(context.Background(), ref)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(listing).To(gomega.HaveLen(1))
		gomega.Expect(lister.counts["nginx"]).To(gomega.Equal(2))
	})
})
