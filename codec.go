// Copyright 2026 Naren Yellavula
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

package arbor

import (
	"encoding/binary"
	"io"

	"github.com/cockroachdb/errors"
)

// Every serialized field is a record: an 8-byte native-endian size
// followed by that many payload bytes. Strings carry their raw bytes,
// fixed-size scalars their native binary form, and composite types
// whatever their Codec writes.

// Codec lets a composite value type define its own record format.
// Implement both methods on a pointer receiver; ReadRecord must consume
// exactly what AppendRecord produced.
type Codec interface {
	AppendRecord(w io.Writer) error
	ReadRecord(r io.Reader) error
}

func writeSize(w io.Writer, size uint64) error {
	return binary.Write(w, binary.NativeEndian, size)
}

// readSize reads a record's size header. io.EOF is returned untouched so
// the caller can tell a clean stream end from a truncated record, which
// comes back marked ErrCorrupt.
func readSize(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, errors.Mark(errors.Wrap(err, "record size"), ErrCorrupt)
	}
	return binary.NativeEndian.Uint64(buf[:]), nil
}

// writeRecord encodes the pointed-to variable as one record. Taking a
// pointer keeps the type switch symmetric with readRecord and lets
// pointer-receiver Codec implementations serve both directions.
func writeRecord(w io.Writer, v any) error {
	if c, ok := v.(Codec); ok {
		return c.AppendRecord(w)
	}
	switch x := v.(type) {
	case *string:
		if err := writeSize(w, uint64(len(*x))); err != nil {
			return err
		}
		_, err := io.WriteString(w, *x)
		return err
	case *int:
		return writeScalar(w, int64(*x))
	case *uint:
		return writeScalar(w, uint64(*x))
	default:
		return writeScalar(w, v)
	}
}

func writeScalar(w io.Writer, v any) error {
	size := binary.Size(v)
	if size < 0 {
		return errors.Newf("arbor: type %T cannot be serialized", v)
	}
	if err := writeSize(w, uint64(size)); err != nil {
		return err
	}
	return binary.Write(w, binary.NativeEndian, v)
}

// readRecord decodes one record into the pointed-to variable. io.EOF
// surfaces only when the stream ends exactly on a record boundary.
func readRecord(r io.Reader, v any) error {
	if c, ok := v.(Codec); ok {
		return c.ReadRecord(r)
	}
	size, err := readSize(r)
	if err != nil {
		return err
	}
	switch p := v.(type) {
	case *string:
		buf := make([]byte, size)
		if _, err := io.ReadFull(r, buf); err != nil {
			return errors.Mark(errors.Wrap(err, "string payload"), ErrCorrupt)
		}
		*p = string(buf)
		return nil
	case *int:
		var x int64
		if err := readScalar(r, size, &x); err != nil {
			return err
		}
		*p = int(x)
		return nil
	case *uint:
		var x uint64
		if err := readScalar(r, size, &x); err != nil {
			return err
		}
		*p = uint(x)
		return nil
	default:
		return readScalar(r, size, v)
	}
}

func readScalar(r io.Reader, size uint64, v any) error {
	want := binary.Size(v)
	if want < 0 {
		return errors.Newf("arbor: type %T cannot be deserialized", v)
	}
	if uint64(want) != size {
		return errors.Mark(
			errors.Newf("scalar size %d, record says %d", want, size), ErrCorrupt)
	}
	if err := binary.Read(r, binary.NativeEndian, v); err != nil {
		return errors.Mark(errors.Wrap(err, "scalar payload"), ErrCorrupt)
	}
	return nil
}
