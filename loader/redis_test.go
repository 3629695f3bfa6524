package loader

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

func TestRedisStorage_Get_Hit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	s := NewRedisStorageFromClient(db, 3600)

	mock.ExpectGet("@langsync:es").SetVal(`{"version":"1.0.0"}`)

	data, err := s.Get(context.Background(), "@langsync:es")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(data) != `{"version":"1.0.0"}` {
		t.Errorf("Get returned %q", data)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStorage_Get_Miss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	s := NewRedisStorageFromClient(db, 3600)

	mock.ExpectGet("@langsync:es").RedisNil()

	_, err := s.Get(context.Background(), "@langsync:es")
	if !errors.Is(err, ErrNotCached) {
		t.Errorf("Get = %v, want ErrNotCached", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStorage_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	s := NewRedisStorageFromClient(db, 3600)

	mock.ExpectSet("@langsync:es", []byte("payload"), 3600*time.Second).SetVal("OK")

	if err := s.Set(context.Background(), "@langsync:es", []byte("payload")); err != nil {
		t.Errorf("Set failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStorage_Set_NoTTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	s := NewRedisStorageFromClient(db, 0)

	mock.ExpectSet("@langsync:es", []byte("payload"), 0).SetVal("OK")

	if err := s.Set(context.Background(), "@langsync:es", []byte("payload")); err != nil {
		t.Errorf("Set failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStorage_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	s := NewRedisStorageFromClient(db, 3600)

	mock.ExpectDel("@langsync:es").SetVal(1)

	if err := s.Delete(context.Background(), "@langsync:es"); err != nil {
		t.Errorf("Delete failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}
