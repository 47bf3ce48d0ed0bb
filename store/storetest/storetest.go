// Package storetest holds the behaviour every store.Store backend must share.
package storetest

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okinoko_governance/store"
)

var errAbort = errors.New("abort")

// Run exercises commit, rollback and read-only semantics against s.
func Run(t *testing.T, s store.Store) {
	t.Helper()

	t.Run("missing key reads nil", func(t *testing.T) {
		require.NoError(t, s.View(func(tx store.Txn) error {
			v, err := tx.Get([]byte("nope"))
			require.NoError(t, err)
			assert.Nil(t, v)
			return nil
		}))
	})

	t.Run("commit makes writes visible", func(t *testing.T) {
		require.NoError(t, s.Update(func(tx store.Txn) error {
			if err := tx.Set([]byte("a"), []byte("1")); err != nil {
				return err
			}
			// read-your-writes inside the same call
			v, err := tx.Get([]byte("a"))
			require.NoError(t, err)
			assert.Equal(t, []byte("1"), v)
			return tx.Set([]byte("b"), []byte("2"))
		}))
		assertValue(t, s, "a", "1")
		assertValue(t, s, "b", "2")
	})

	t.Run("overwrite replaces value", func(t *testing.T) {
		require.NoError(t, s.Update(func(tx store.Txn) error {
			return tx.Set([]byte("a"), []byte("11"))
		}))
		assertValue(t, s, "a", "11")
	})

	t.Run("error discards every write", func(t *testing.T) {
		err := s.Update(func(tx store.Txn) error {
			if err := tx.Set([]byte("a"), []byte("changed")); err != nil {
				return err
			}
			if err := tx.Delete([]byte("b")); err != nil {
				return err
			}
			if err := tx.Set([]byte("c"), []byte("3")); err != nil {
				return err
			}
			return errAbort
		})
		require.ErrorIs(t, err, errAbort)
		assertValue(t, s, "a", "11")
		assertValue(t, s, "b", "2")
		assertValue(t, s, "c", "")
	})

	t.Run("delete removes key", func(t *testing.T) {
		require.NoError(t, s.Update(func(tx store.Txn) error {
			return tx.Delete([]byte("b"))
		}))
		assertValue(t, s, "b", "")
	})

	t.Run("view rejects writes", func(t *testing.T) {
		err := s.View(func(tx store.Txn) error {
			return tx.Set([]byte("x"), []byte("y"))
		})
		require.Error(t, err)
		assertValue(t, s, "x", "")
	})

	t.Run("concurrent updates serialize", func(t *testing.T) {
		const writers = 50
		var wg sync.WaitGroup
		errs := make(chan error, writers)
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- s.Update(func(tx store.Txn) error {
					raw, err := tx.Get([]byte("n"))
					if err != nil {
						return err
					}
					n := 0
					if raw != nil {
						if n, err = strconv.Atoi(string(raw)); err != nil {
							return err
						}
					}
					return tx.Set([]byte("n"), []byte(strconv.Itoa(n+1)))
				})
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}
		assertValue(t, s, "n", strconv.Itoa(writers))
	})
}

// assertValue checks a committed key; want "" means the key must be absent.
func assertValue(t *testing.T, s store.Store, key, want string) {
	t.Helper()
	require.NoError(t, s.View(func(tx store.Txn) error {
		v, err := tx.Get([]byte(key))
		require.NoError(t, err)
		if want == "" {
			assert.Nil(t, v, "key %q should be absent", key)
		} else {
			assert.Equal(t, want, string(v), "key %q", key)
		}
		return nil
	}))
}
