package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 抽取流程與背景清理的計數器
type Metrics interface {
	IncExtractRequests()
	IncExtractCompleted(status string)
	AddFilesSwept(n int)
}

// Noop implements Metrics without emitting anything.
type Noop struct{}

// IncExtractRequests no-op
func (Noop) IncExtractRequests() {}

// IncExtractCompleted no-op
func (Noop) IncExtractCompleted(string) {}

// AddFilesSwept no-op
func (Noop) AddFilesSwept(int) {}

// Prom implements Metrics backed by Prometheus counters.
type Prom struct {
	extractRequests  prometheus.Counter
	extractCompleted *prometheus.CounterVec
	filesSwept       prometheus.Counter
	once             sync.Once
}

// NewProm 建立並註冊 Prometheus 計數器
func NewProm(namespace string) *Prom {
	p := &Prom{
		extractRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extract_requests_total",
			Help:      "Extraction requests received",
		}),
		extractCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extract_completed_total",
			Help:      "Extraction jobs completed by status",
		}, []string{"status"}),
		filesSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_swept_total",
			Help:      "Expired audio files deleted by the cleaner",
		}),
	}
	p.register()
	return p
}

func (p *Prom) register() {
	p.once.Do(func() {
		prometheus.MustRegister(p.extractRequests, p.extractCompleted, p.filesSwept)
	})
}

// IncExtractRequests 收到一筆抽取請求
func (p *Prom) IncExtractRequests() {
	p.extractRequests.Inc()
}

// IncExtractCompleted 一筆抽取工作結束，status 為 success / 錯誤分類
func (p *Prom) IncExtractCompleted(status string) {
	p.extractCompleted.WithLabelValues(status).Inc()
}

// AddFilesSwept 背景清理刪除了 n 個檔案
func (p *Prom) AddFilesSwept(n int) {
	p.filesSwept.Add(float64(n))
}
