package node_test

import (
	"profiling-server/internal/infra/node"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Node", func() {
	ginkgo.Context("GetNodeInfo", func() {
		ginkgo.It("should describe the running instance", func() {
			info := node.GetNodeInfo()

			gomega.Expect(info.ID).To(gomega.HaveLen(36))
			gomega.Expect(info.Hostname).NotTo(gomega.BeEmpty())
			gomega.Expect(info.Version).To(gomega.Equal(node.Version))
			gomega.Expect(info.StartedAt).NotTo(gomega.BeZero())
		})

		ginkgo.It("should return the same instance on every call", func() {
			gomega.Expect(node.GetNodeInfo()).To(gomega.BeIdenticalTo(node.GetNodeInfo()))
		})

		ginkgo.It("should report a non negative uptime", func() {
			gomega.Expect(node.GetNodeInfo().Uptime()).To(gomega.BeNumerically(">=", 0))
		})
	})
})
