package actions_test

import (
	"context"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/hubsync/hubsync/internal/actions"
	runtimeMocks "github.com/hubsync/hubsync/pkg/runtime/mocks"
)

var _ = ginkgo.Describe("the pull action", func() {
	var executor *runtimeMocks.RecordingExecutor

	ginkgo.BeforeEach(func() {
		executor = runtimeMocks.NewRecordingExecutor()
	})

	ginkgo.When("every pull succeeds", func() {
		ginkgo.It("should pull all declared tags in deterministic order", func() {
			store := newStore(map[string][]string{
				"nginx":          {"latest", "1.25"},
				"grafana/agent":  {"v0.39.0"},
				"library-x/tool": {"edge"},
			})

			err := actions.Pull(context.Background(), store, executor)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(executor.Invocations).To(gomega.Equal([]runtimeMocks.Invocation{
				{Op: "pull", Args: []string{"grafana/agent:v0.39.0"}},
				{Op: "pull", Args: []string{"library-x/tool:edge"}},
				{Op: "pull", Args: []string{"nginx:1.25"}},
				{Op: "pull", Args: []string{"nginx:latest"}},
			}))
		})
	})

	ginkgo.When("a pull fails", func() {
		ginkgo.It("should abort immediately without attempting the remaining pulls", func() {
			store := newStore(map[string][]string{
				"aaa": {"1"},
				"bbb": {"1"},
				"ccc": {"1"},
			})
			executor.FailPull["bbb:1"] = true

			err := actions.Pull(context.Background(), store, executor)

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("bbb:1"))
			gomega.Expect(executor.Ops("pull")).To(gomega.HaveLen(2))
		})
	})
})
