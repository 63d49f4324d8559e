package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/spec-kit/evaluacion-docente/internal/domain"
)

var (
	bucketResponses    = []byte("Responses")
	bucketPeriod       = []byte("Period")
	bucketCourseStatus = []byte("CourseStatus")

	periodKey = []byte("current")
)

type boltMirror struct {
	db *bbolt.DB
}

// NewBoltMirror returns a Mirror backed by an embedded bbolt file. Buckets are created on demand.
func NewBoltMirror(db *bbolt.DB) (Mirror, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketResponses, bucketPeriod, bucketCourseStatus} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create buckets: %w", err)
	}
	return &boltMirror{db: db}, nil
}

// SaveResponse keeps the first response stored for a (student, course) pair.
func (m *boltMirror) SaveResponse(_ context.Context, resp domain.SurveyResponse) error {
	key := responseStorageKey(resp)
	return m.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketResponses)
		if b.Get(key) != nil {
			return nil
		}
		data, err := json.Marshal(resp)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

func (m *boltMirror) SavePeriod(_ context.Context, period domain.EvaluationPeriod) error {
	return put(m.db, bucketPeriod, periodKey, period)
}

func (m *boltMirror) SaveCourseStatus(_ context.Context, courseID string, active bool) error {
	return put(m.db, bucketCourseStatus, []byte(courseID), active)
}

// Load restores responses ordered by submission time; bbolt iterates keys in byte order.
func (m *boltMirror) Load(_ context.Context) (*MirrorState, error) {
	state := &MirrorState{CourseStatus: map[string]bool{}}
	err := m.db.View(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketResponses).ForEach(func(_, v []byte) error {
			var resp domain.SurveyResponse
			if err := json.Unmarshal(v, &resp); err != nil {
				return err
			}
			state.Responses = append(state.Responses, resp)
			return nil
		}); err != nil {
			return err
		}

		if v := tx.Bucket(bucketPeriod).Get(periodKey); v != nil {
			var period domain.EvaluationPeriod
			if err := json.Unmarshal(v, &period); err != nil {
				return err
			}
			state.Period = &period
		}

		return tx.Bucket(bucketCourseStatus).ForEach(func(k, v []byte) error {
			var active bool
			if err := json.Unmarshal(v, &active); err != nil {
				return err
			}
			state.CourseStatus[string(k)] = active
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortResponses(state.Responses)
	return state, nil
}

func put[T any](db *bbolt.DB, bucket, key []byte, value T) error {
	return db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucket)
		if err != nil {
			return err
		}
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

func responseStorageKey(resp domain.SurveyResponse) []byte {
	return []byte(resp.Student + "\x00" + resp.CourseID)
}
