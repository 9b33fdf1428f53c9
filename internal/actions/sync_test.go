package actions_test

import (
	"context"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/hubsync/hubsync/internal/actions"
	"github.com/hubsync/hubsync/internal/actions/mocks"
	runtimeMocks "github.com/hubsync/hubsync/pkg/runtime/mocks"
	"github.com/hubsync/hubsync/pkg/types"
)

var _ = ginkgo.Describe("the sync action", func() {
	var (
		lister   *mocks.StubLister
		executor *runtimeMocks.RecordingExecutor
	)

	ginkgo.BeforeEach(func() {
		lister = mocks.NewStubLister()
		executor = runtimeMocks.NewRecordingExecutor()
	})

	ginkgo.It("should run the pull phase to completion before any push", func() {
		store := newStore(map[string][]string{"nginx": {"latest"}})
		lister.Listings["nginx"] = []types.TagDescriptor{descriptor("latest", "sha256:abc")}

		report, err := actions.Sync(context.Background(), store, lister, executor,
			actions.PushOptions{Registry: "dest.example.com"})

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(report.PushedTargets).To(gomega.Equal(1))
		gomega.Expect(executor.Invocations[0].Op).To(gomega.Equal("pull"))
		gomega.Expect(executor.Ops("push")).To(gomega.HaveLen(1))
	})

	ginkgo.When("a pull fails", func() {
		ginkgo.It("should abort before the push phase begins", func() {
			store := newStore(map[string][]string{"nginx": {"latest"}})
			lister.Listings["nginx"] = []types.TagDescriptor{descriptor("latest", "sha256:abc")}
			executor.FailPull["nginx:latest"] = true

			_, err := actions.Sync(context.Background(), store, lister, executor,
				actions.PushOptions{Registry: "dest.example.com"})

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(executor.Ops("push")).To(gomega.BeEmpty())
			gomega.Expect(lister.FetchCounts).To(gomega.BeEmpty())
		})
	})
})
