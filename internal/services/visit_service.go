package services

import (
	"strconv"
	"sync"
	"time"

	"go.uber.org/atomic"

	"sbd/internal/models"
)

type VisitServiceInterface interface {
	AddVisit(v *models.Visit)
	GetBufferSize() int
	AggregateVisits(retention time.Duration)
	GetSnapshot() *models.AnalyticsData
	PutData(data *models.AnalyticsData)
}

// VisitService buffers visit events and folds them into the aggregated
// analytics state on a schedule. Two buffers swap on every aggregation so the
// hot path never touches the aggregate maps.
type VisitService struct {
	bufMu   sync.Mutex
	active  atomic.Bool // true: buffer1 receives, false: buffer2
	buffer1 []*models.Visit
	buffer2 []*models.Visit

	dataMu sync.RWMutex
	data   *models.AnalyticsData
}

func NewVisitService() VisitServiceInterface {
	vs := &VisitService{
		buffer1: make([]*models.Visit, 0),
		buffer2: make([]*models.Visit, 0),
		data:    models.NewAnalyticsData(),
	}
	vs.active.Store(true)
	return vs
}

func (vs *VisitService) AddVisit(v *models.Visit) {
	if v == nil {
		return
	}
	if v.Time.IsZero() {
		v.Time = time.Now()
	}
	vs.bufMu.Lock()
	defer vs.bufMu.Unlock()
	if vs.active.Load() {
		vs.buffer1 = append(vs.buffer1, v)
	} else {
		vs.buffer2 = append(vs.buffer2, v)
	}
}

func (vs *VisitService) GetBufferSize() int {
	vs.bufMu.Lock()
	defer vs.bufMu.Unlock()
	if vs.active.Load() {
		return len(vs.buffer1)
	}
	return len(vs.buffer2)
}

func (vs *VisitService) swapBuffer() []*models.Visit {
	vs.bufMu.Lock()
	defer vs.bufMu.Unlock()
	vs.active.Store(!vs.active.Load())
	if vs.active.Load() {
		drained := vs.buffer2
		vs.buffer2 = make([]*models.Visit, 0)
		return drained
	}
	drained := vs.buffer1
	vs.buffer1 = make([]*models.Visit, 0)
	return drained
}

// AggregateVisits folds the inactive buffer into the aggregate state and
// prunes raw visits older than the retention window. retention <= 0 keeps
// everything.
func (vs *VisitService) AggregateVisits(retention time.Duration) {
	drained := vs.swapBuffer()

	vs.dataMu.Lock()
	defer vs.dataMu.Unlock()
	for _, v := range drained {
		vs.data.Visits = append(vs.data.Visits, *v)
		vs.data.Pages[v.Page]++
		vs.data.Devices[v.Device]++
		vs.data.Hours[strconv.Itoa(v.Time.Hour())]++
		vs.data.TotalVisits++
	}

	if retention > 0 {
		cutoff := time.Now().Add(-retention)
		kept := vs.data.Visits[:0]
		for _, v := range vs.data.Visits {
			if v.Time.After(cutoff) {
				kept = append(kept, v)
			}
		}
		vs.data.Visits = kept
	}
}

// GetSnapshot returns a deep copy safe to serialize while the service keeps
// aggregating.
func (vs *VisitService) GetSnapshot() *models.AnalyticsData {
	vs.dataMu.RLock()
	defer vs.dataMu.RUnlock()

	snap := models.NewAnalyticsData()
	snap.Visits = append(snap.Visits, vs.data.Visits...)
	for k, v := range vs.data.Pages {
		snap.Pages[k] = v
	}
	for k, v := range vs.data.Devices {
		snap.Devices[k] = v
	}
	for k, v := range vs.data.Hours {
		snap.Hours[k] = v
	}
	snap.TotalVisits = vs.data.TotalVisits
	return snap
}

func (vs *VisitService) PutData(data *models.AnalyticsData) {
	if data == nil {
		return
	}
	if data.Visits == nil {
		data.Visits = []models.Visit{}
	}
	if data.Pages == nil {
		data.Pages = make(map[string]int)
	}
	if data.Devices == nil {
		data.Devices = make(map[string]int)
	}
	if data.Hours == nil {
		data.Hours = make(map[string]int)
	}
	vs.dataMu.Lock()
	defer vs.dataMu.Unlock()
	vs.data = data
}
