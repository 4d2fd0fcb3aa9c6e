package notify

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/goleak"

	"github.com/zombor/patrol-reports/internal/discord"
	"github.com/zombor/patrol-reports/internal/ledger"
	"github.com/zombor/patrol-reports/internal/mugshot"
	"github.com/zombor/patrol-reports/internal/penalcode"
	"github.com/zombor/patrol-reports/internal/report"
)

type sentMessage struct {
	channelID string
	content   string
	files     []discord.Attachment
}

// fakeSender records messages instead of calling Discord
type fakeSender struct {
	mu       sync.Mutex
	messages []sentMessage
	err      error
}

func (f *fakeSender) SendMessage(ctx context.Context, channelID, content string, files ...discord.Attachment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, sentMessage{channelID: channelID, content: content, files: files})
	return nil
}

func (f *fakeSender) sent() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.messages...)
}

type fakeDescriber struct {
	text string
	err  error
	seen []mugshot.Image
}

func (f *fakeDescriber) Describe(ctx context.Context, img mugshot.Image) (string, error) {
	f.seen = append(f.seen, img)
	return f.text, f.err
}

func (f *fakeDescriber) Close() error { return nil }

func jpegMugshot() *mugshot.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	Expect(jpeg.Encode(&buf, img, nil)).To(Succeed())
	return &mugshot.Image{ContentType: "image/jpeg", Data: buf.Bytes()}
}

var _ = Describe("Dispatcher", func() {
	var (
		sender     *fakeSender
		describer  *fakeDescriber
		registry   *prometheus.Registry
		dispatcher *Dispatcher
		citation   *report.Citation
		arrest     *report.Arrest
	)

	BeforeEach(func() {
		sender = &fakeSender{}
		describer = &fakeDescriber{text: "Red jacket."}
		registry = prometheus.NewRegistry()
		dispatcher = NewDispatcher(sender, &Formatter{Court: testCourt}, Config{
			ChannelID:  "chan-1",
			Describer:  describer,
			Registerer: registry,
		})

		officers := []ledger.Officer{{Badge: "101", Username: "jones", Rank: "Sergeant", DiscordUserID: "111", Signature: "111"}}
		citation = &report.Citation{
			ID:               7,
			Officers:         officers,
			ViolatorUsername: "555",
			ViolationType:    "Citation",
			Offenses:         []report.Offense{{Code: "(1)01", Description: "Speeding", AmountDue: "100.00", JailTime: penalcode.None}},
			TotalAmount:      "100.00",
		}
		arrest = &report.Arrest{
			ID:            "arrest-1",
			Officers:      officers,
			Description:   "Tall",
			Offenses:      []report.Offense{{Code: "(4)01", AmountDue: "0.00", JailTime: penalcode.Seconds(60)}},
			TotalAmount:   "0.00",
			TotalJailTime: 60,
			Court:         testCourt,
		}
	})

	AfterEach(func() {
		dispatcher.Close()
	})

	It("should not leak delivery goroutines", func() {
		defer goleak.VerifyNone(GinkgoT(), goleak.IgnoreCurrent())

		d := NewDispatcher(sender, &Formatter{Court: testCourt}, Config{ChannelID: "chan-1"})
		for range 5 {
			d.NotifyCitation(citation)
		}
		d.Close()
		Expect(sender.sent()).To(HaveLen(5))
	})

	It("should post citations to the channel", func() {
		dispatcher.NotifyCitation(citation)
		dispatcher.Close()

		msgs := sender.sent()
		Expect(msgs).To(HaveLen(1))
		Expect(msgs[0].channelID).To(Equal("chan-1"))
		Expect(msgs[0].content).To(ContainSubstring("Penal Code: **(1)01**"))
		Expect(msgs[0].files).To(BeEmpty())
		Expect(testutil.ToFloat64(dispatcher.sent.WithLabelValues("citation", "sent"))).To(Equal(1.0))
	})

	It("should post arrests without attachments when described", func() {
		arrest.Mugshot = jpegMugshot()
		arrest.HasMugshot = true

		dispatcher.NotifyArrest(arrest)
		dispatcher.Close()

		msgs := sender.sent()
		Expect(msgs).To(HaveLen(1))
		Expect(msgs[0].files).To(BeEmpty())
		Expect(msgs[0].content).To(ContainSubstring("**Tall**"))
		Expect(describer.seen).To(BeEmpty())
	})

	It("should attach a captioned PNG mugshot", func() {
		arrest.Description = ""
		arrest.Mugshot = jpegMugshot()
		arrest.HasMugshot = true

		dispatcher.NotifyArrest(arrest)
		dispatcher.Close()

		msgs := sender.sent()
		Expect(msgs).To(HaveLen(1))
		Expect(msgs[0].files).To(HaveLen(1))
		Expect(msgs[0].files[0].Filename).To(Equal("mugshot.png"))
		Expect(msgs[0].files[0].ContentType).To(Equal("image/png"))
		Expect(msgs[0].content).To(ContainSubstring("See attached mugshot: Red jacket."))
		Expect(describer.seen).To(HaveLen(1))
		Expect(describer.seen[0].ContentType).To(Equal("image/png"))
	})

	It("should still send when captioning fails", func() {
		describer.err = errors.New("model unavailable")
		arrest.Description = ""
		arrest.Mugshot = jpegMugshot()
		arrest.HasMugshot = true

		dispatcher.NotifyArrest(arrest)
		dispatcher.Close()

		msgs := sender.sent()
		Expect(msgs).To(HaveLen(1))
		Expect(msgs[0].content).To(ContainSubstring("**See attached mugshot**"))
	})

	It("should count failed deliveries", func() {
		sender.err = errors.New("discord down")

		dispatcher.NotifyCitation(citation)
		dispatcher.Close()

		Expect(sender.sent()).To(BeEmpty())
		Expect(testutil.ToFloat64(dispatcher.sent.WithLabelValues("citation", "failed"))).To(Equal(1.0))
	})

	It("should drop notifications after Close", func() {
		dispatcher.Close()
		dispatcher.NotifyArrest(arrest)

		Expect(sender.sent()).To(BeEmpty())
		Expect(testutil.ToFloat64(dispatcher.sent.WithLabelValues("arrest", "dropped"))).To(Equal(1.0))
	})

	It("should register its counter", func() {
		dispatcher.NotifyCitation(citation)
		dispatcher.Close()

		families, err := registry.Gather()
		Expect(err).NotTo(HaveOccurred())
		Expect(families).To(ContainElement(WithTransform(func(f any) string {
			return f.(interface{ GetName() string }).GetName()
		}, Equal("patrol_notifications_total"))))
	})
})
