package session

import (
	"bytes"
	"errors"
	"io"
)

const (
	recordFormatVersionCurrent = 1
)

// EncodeUser serializes a user record into the compact length-prefixed
// binary form stored under the user key. The first byte is the format
// version so later field additions stay readable.
func EncodeUser(u *User) ([]byte, error) {
	if u == nil {
		return nil, errors.New("nil user record")
	}

	var buf bytes.Buffer

	buf.WriteByte(recordFormatVersionCurrent)

	for _, field := range []struct {
		name  string
		value string
	}{
		{"userID", u.ID},
		{"name", u.Name},
		{"email", u.Email},
		{"phone", u.Phone},
		{"role", u.Role},
	} {
		if len(field.value) > 255 {
			return nil, errors.New(field.name + " too long")
		}
		buf.WriteByte(byte(len(field.value)))
		buf.WriteString(field.value)
	}

	return buf.Bytes(), nil
}

// DecodeUser parses a persisted user record. Unknown format versions and
// truncated blobs are rejected so a corrupt key is surfaced instead of
// yielding a partially filled identity.
func DecodeUser(data []byte) (*User, error) {
	reader := bytes.NewReader(data)

	version, err := reader.ReadByte()
	if err != nil {
		return nil, err
	}
	if version != recordFormatVersionCurrent {
		return nil, errors.New("invalid user record version")
	}

	fields := make([]string, 5)
	for i := range fields {
		n, err := reader.ReadByte()
		if err != nil {
			return nil, err
		}
		raw := make([]byte, n)
		if _, err := io.ReadFull(reader, raw); err != nil {
			return nil, err
		}
		fields[i] = string(raw)
	}

	if reader.Len() != 0 {
		return nil, errors.New("trailing bytes in user record")
	}

	return &User{
		ID:    fields[0],
		Name:  fields[1],
		Email: fields[2],
		Phone: fields[3],
		Role:  fields[4],
	}, nil
}
