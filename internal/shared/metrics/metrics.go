package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	generationJobsReceivedTotal  atomic.Uint64
	generationJobsCompletedTotal atomic.Uint64
	generationJobsFailedTotal    atomic.Uint64
	generationJobsDroppedTotal   atomic.Uint64
	emailsSentTotal              atomic.Uint64

	generationDuration = newHistogram([]float64{250, 500, 1000, 2000, 5000, 10000, 30000, 60000, 120000})
)

// IncGenerationJobsReceived increments the received counter.
func IncGenerationJobsReceived() {
	generationJobsReceivedTotal.Add(1)
}

// IncGenerationJobsCompleted increments the completed counter.
func IncGenerationJobsCompleted() {
	generationJobsCompletedTotal.Add(1)
}

// IncGenerationJobsFailed increments the failed counter.
func IncGenerationJobsFailed() {
	generationJobsFailedTotal.Add(1)
}

// IncGenerationJobsDropped increments the counter for messages deleted
// without processing, such as undecodable payloads.
func IncGenerationJobsDropped() {
	generationJobsDroppedTotal.Add(1)
}

// IncEmailsSent increments the delivered-email counter.
func IncEmailsSent() {
	emailsSentTotal.Add(1)
}

// ObserveGenerationDurationMs records a generation duration in milliseconds.
func ObserveGenerationDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	generationDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "cover_letter_jobs_received_total", "Total generation jobs received", generationJobsReceivedTotal.Load())
	writeCounter(&buf, "cover_letter_jobs_completed_total", "Total generation jobs completed", generationJobsCompletedTotal.Load())
	writeCounter(&buf, "cover_letter_jobs_failed_total", "Total generation jobs failed", generationJobsFailedTotal.Load())
	writeCounter(&buf, "cover_letter_jobs_dropped_total", "Total generation jobs dropped unprocessed", generationJobsDroppedTotal.Load())
	writeCounter(&buf, "cover_letter_emails_sent_total", "Total cover letter emails delivered", emailsSentTotal.Load())
	writeHistogram(&buf, "cover_letter_generation_duration_ms", "Generation duration in milliseconds", generationDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
