// Copyright 2026 Soniclabs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/soniclabs/callscribe/core"
)

// MarshalCallRecord serializes a CallRecord to bytes.
func MarshalCallRecord(record *core.CallRecord) []byte {
	buf := make([]byte, core.CallRecordMUS.Size(*record))
	core.CallRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalCallRecord deserializes a CallRecord from bytes.
func UnmarshalCallRecord(data []byte) (*core.CallRecord, error) {
	record, _, err := core.CallRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
