package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zombor/patrol-reports/internal/discord"
	"github.com/zombor/patrol-reports/internal/mugshot"
	"github.com/zombor/patrol-reports/internal/report"
)

// DefaultTimeout bounds a single delivery, including mugshot conversion and
// captioning.
const DefaultTimeout = 30 * time.Second

// Sender posts a message to a Discord channel.
type Sender interface {
	SendMessage(ctx context.Context, channelID, content string, files ...discord.Attachment) error
}

// Config configures a Dispatcher.
type Config struct {
	ChannelID string
	Timeout   time.Duration
	// Describer captions arrest mugshots. Nil disables captions.
	Describer mugshot.Describer
	// Registerer receives the delivery counter. Nil disables metrics.
	Registerer prometheus.Registerer
}

// Dispatcher delivers reports to Discord in the background. Submissions never
// wait on Discord and delivery failures are only logged.
type Dispatcher struct {
	sender    Sender
	formatter *Formatter
	cfg       Config
	sent      *prometheus.CounterVec

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

var _ report.Notifier = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher posting to cfg.ChannelID.
func NewDispatcher(sender Sender, formatter *Formatter, cfg Config) *Dispatcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	d := &Dispatcher{
		sender:    sender,
		formatter: formatter,
		cfg:       cfg,
		sent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "patrol_notifications_total",
			Help: "Discord deliveries by kind and result.",
		}, []string{"kind", "result"}),
	}
	if cfg.Registerer != nil {
		cfg.Registerer.MustRegister(d.sent)
	}
	return d
}

// NotifyCitation queues a citation for delivery.
func (d *Dispatcher) NotifyCitation(c *report.Citation) {
	d.spawn("citation", func(ctx context.Context) error {
		content, err := d.formatter.Citation(c)
		if err != nil {
			return err
		}
		return d.sender.SendMessage(ctx, d.cfg.ChannelID, content)
	})
}

// NotifyArrest queues an arrest report for delivery. A mugshot is attached as
// PNG when the officer gave no written description.
func (d *Dispatcher) NotifyArrest(a *report.Arrest) {
	d.spawn("arrest", func(ctx context.Context) error {
		var (
			files   []discord.Attachment
			caption string
		)
		if a.Mugshot != nil && a.Description == "" {
			img, err := mugshot.ToPNG(*a.Mugshot)
			if err != nil {
				slog.WarnContext(ctx, "Failed to convert mugshot, sending original", "arrest", a.ID, "error", err)
				img = *a.Mugshot
			}
			files = append(files, discord.Attachment{
				Filename:    img.Filename(),
				ContentType: img.ContentType,
				Data:        img.Data,
			})
			caption = d.describe(ctx, a.ID, img)
		}

		content, err := d.formatter.Arrest(a, caption)
		if err != nil {
			return err
		}
		return d.sender.SendMessage(ctx, d.cfg.ChannelID, content, files...)
	})
}

func (d *Dispatcher) describe(ctx context.Context, id string, img mugshot.Image) string {
	if d.cfg.Describer == nil {
		return ""
	}
	text, err := d.cfg.Describer.Describe(ctx, img)
	if err != nil {
		slog.WarnContext(ctx, "Failed to describe mugshot", "arrest", id, "error", err)
		return ""
	}
	return text
}

func (d *Dispatcher) spawn(kind string, deliver func(ctx context.Context) error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		slog.Warn("Dispatcher closed, dropping notification", "kind", kind)
		d.sent.WithLabelValues(kind, "dropped").Inc()
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.cfg.Timeout)
		defer cancel()

		if err := deliver(ctx); err != nil {
			slog.Error("Failed to send Discord notification", "kind", kind, "error", err)
			d.sent.WithLabelValues(kind, "failed").Inc()
			return
		}
		slog.Info("Discord notification sent", "kind", kind)
		d.sent.WithLabelValues(kind, "sent").Inc()
	}()
}

// Close stops accepting notifications and waits for in-flight deliveries.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.wg.Wait()
}
