package bench

import (
	"encoding/binary"
	"encoding/json"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/rlaau/orst/kvdb"
)

// 키 배치:
//
//	runs/<runID>                   -> RunInfo (JSON)
//	run/<runID>/<seq: 8B big-endian> -> Result (JSON)
const (
	runsPrefix   = "runs/"
	resultPrefix = "run/"
)

// RunInfo 저장된 실행 하나의 메타데이터
type RunInfo struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`
	Seed    int64     `json:"seed"`
	Mode    Mode      `json:"mode"`
	Results int       `json:"results"`
}

func resultKeyPrefix(runID string) []byte {
	return []byte(resultPrefix + runID + "/")
}

// SaveResults results 를 runID 아래에 순서대로 저장한다.
func SaveResults(store kvdb.Store, info RunInfo, results []Result) error {
	if info.ID == "" || strings.Contains(info.ID, "/") {
		return errors.Newf("invalid run id %q", info.ID)
	}
	prefix := resultKeyPrefix(info.ID)
	for i, r := range results {
		key := binary.BigEndian.AppendUint64(append([]byte(nil), prefix...), uint64(i))
		value, err := json.Marshal(r)
		if err != nil {
			return errors.Wrap(err, "marshal result")
		}
		if err := store.Put(key, value); err != nil {
			return errors.Wrapf(err, "save result %d", i)
		}
	}

	info.Results = len(results)
	meta, err := json.Marshal(info)
	if err != nil {
		return errors.Wrap(err, "marshal run info")
	}
	return errors.Wrap(store.Put([]byte(runsPrefix+info.ID), meta), "save run info")
}

// LoadResults runID 로 저장된 결과를 저장 순서대로 읽는다.
func LoadResults(store kvdb.Store, runID string) (RunInfo, []Result, error) {
	var info RunInfo
	meta, err := store.Get([]byte(runsPrefix + runID))
	if err != nil {
		return info, nil, errors.Wrapf(err, "run %q", runID)
	}
	if err := json.Unmarshal(meta, &info); err != nil {
		return info, nil, errors.Wrap(err, "decode run info")
	}

	results := make([]Result, 0, info.Results)
	err = store.Scan(resultKeyPrefix(runID), func(_, value []byte) error {
		var r Result
		if err := json.Unmarshal(value, &r); err != nil {
			return errors.Wrap(err, "decode result")
		}
		results = append(results, r)
		return nil
	})
	if err != nil {
		return info, nil, err
	}
	return info, results, nil
}

// ListRuns 저장된 모든 실행의 메타데이터 (ID 순)
func ListRuns(store kvdb.Store) ([]RunInfo, error) {
	var runs []RunInfo
	err := store.Scan([]byte(runsPrefix), func(_, value []byte) error {
		var info RunInfo
		if err := json.Unmarshal(value, &info); err != nil {
			return errors.Wrap(err, "decode run info")
		}
		runs = append(runs, info)
		return nil
	})
	return runs, err
}
