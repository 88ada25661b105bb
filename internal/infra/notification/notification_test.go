package notification_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"profiling-server/internal/infra/notification"
	mocknotification "profiling-server/test/unit/doubles/infra/notification"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("SMSGatewayClient", func() {
	var (
		server   *httptest.Server
		received atomic.Value
		status   int
		calls    atomic.Int32
	)

	ginkgo.BeforeEach(func() {
		status = http.StatusOK
		calls.Store(0)
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			gomega.Expect(r.URL.Path).To(gomega.Equal("/messages"))
			gomega.Expect(r.ParseForm()).To(gomega.Succeed())
			received.Store(r.PostForm)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			if status >= 400 {
				w.Write([]byte(`{"message":"invalid number"}`))
				return
			}
			w.Write([]byte(`[{"message_id":1}]`))
		}))
	})

	ginkgo.AfterEach(func() {
		server.Close()
	})

	newClient := func(retries int) *notification.SMSGatewayClient {
		return notification.NewSMSGatewayClient(notification.SMSGatewayConfig{
			BaseURL:    server.URL,
			APIKey:     "secret",
			SenderName: "BHW",
			Retries:    retries,
		})
	}

	ginkgo.It("posts the message as form data", func() {
		err := newClient(0).SendSMS(context.Background(), notification.SMSRequest{To: "+639171234567", Message: "Your code is 123456"})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		form := received.Load().(map[string][]string)
		gomega.Expect(form["number"]).To(gomega.ConsistOf("+639171234567"))
		gomega.Expect(form["sendername"]).To(gomega.ConsistOf("BHW"))
		gomega.Expect(form["apikey"]).To(gomega.ConsistOf("secret"))
	})

	ginkgo.It("reports gateway rejections without retrying them", func() {
		status = http.StatusBadRequest

		err := newClient(2).SendSMS(context.Background(), notification.SMSRequest{To: "123", Message: "x"})

		var notifErr *notification.NotificationError
		gomega.Expect(errors.As(err, &notifErr)).To(gomega.BeTrue())
		gomega.Expect(err.Error()).To(gomega.ContainSubstring("invalid number"))
		gomega.Expect(calls.Load()).To(gomega.Equal(int32(1)))
	})

	ginkgo.It("retries server errors", func() {
		status = http.StatusBadGateway

		err := newClient(2).SendSMS(context.Background(), notification.SMSRequest{To: "+639171234567", Message: "x"})
		gomega.Expect(err).To(gomega.HaveOccurred())
		gomega.Expect(calls.Load()).To(gomega.Equal(int32(3)))
	})

	ginkgo.It("does not send email", func() {
		err := newClient(0).SendEmail(context.Background(), notification.EmailRequest{To: "a@b.c"})
		gomega.Expect(errors.Is(err, notification.ErrChannelNotSupported)).To(gomega.BeTrue())
	})
})

var _ = ginkgo.Describe("CompositeNotificationClient", func() {
	var (
		ctrl  *gomock.Controller
		email *mocknotification.MockNotificationClient
		sms   *mocknotification.MockNotificationClient
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		email = mocknotification.NewMockNotificationClient(ctrl)
		sms = mocknotification.NewMockNotificationClient(ctrl)
	})

	ginkgo.It("routes each channel to its provider", func() {
		client := notification.NewCompositeNotificationClient(email, sms)
		ctx := context.Background()

		email.EXPECT().SendEmail(ctx, notification.EmailRequest{To: "juan@example.com"}).Return(nil)
		sms.EXPECT().SendSMS(ctx, notification.SMSRequest{To: "+639171234567"}).Return(errors.New("down"))

		gomega.Expect(client.SendEmail(ctx, notification.EmailRequest{To: "juan@example.com"})).To(gomega.Succeed())
		gomega.Expect(client.SendSMS(ctx, notification.SMSRequest{To: "+639171234567"})).To(gomega.MatchError("down"))
	})

	ginkgo.It("logs instead of sending locally", func() {
		client := notification.NewLogNotificationClient()
		gomega.Expect(client.SendSMS(context.Background(), notification.SMSRequest{To: "+639171234567", Message: "123456"})).To(gomega.Succeed())
		gomega.Expect(client.SendEmail(context.Background(), notification.EmailRequest{To: "juan@example.com"})).To(gomega.Succeed())
	})

	ginkgo.It("refuses sms over mailersend", func() {
		client := notification.NewMailerSendClient(notification.MailerSendConfig{APIKey: "k"})
		err := client.SendSMS(context.Background(), notification.SMSRequest{})
		gomega.Expect(errors.Is(err, notification.ErrChannelNotSupported)).To(gomega.BeTrue())
	})
})
