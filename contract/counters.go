package contract

import (
	"fmt"
	"strconv"

	"okinoko_governance/store"
)

// getCount reads the string counter under the key. ok is false when the key was never written.
func getCount(tx store.Txn, key []byte) (n uint64, ok bool, err error) {
	data, err := tx.Get(key)
	if err != nil {
		return 0, false, fmt.Errorf("read counter: %w", err)
	}
	if len(data) == 0 {
		return 0, false, nil
	}
	n, err = strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse counter %q: %w", data, err)
	}
	return n, true, nil
}

// setCount stores uint64 counters back as decimal strings.
func setCount(tx store.Txn, key []byte, n uint64) error {
	if err := tx.Set(key, []byte(strconv.FormatUint(n, 10))); err != nil {
		return fmt.Errorf("write counter: %w", err)
	}
	return nil
}

// daoCounter is the next dao id, 1 before the first dao exists.
func daoCounter(tx store.Txn) (uint64, error) {
	n, ok, err := getCount(tx, daoCounterKey)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 1, nil
	}
	return n, nil
}

// allocateDAOID hands out the current global counter and bumps it.
func allocateDAOID(tx store.Txn) (uint64, error) {
	id, err := daoCounter(tx)
	if err != nil {
		return 0, err
	}
	if id == ^uint64(0) {
		return 0, fail(KindInvalidParams, "dao id space exhausted")
	}
	if err := setCount(tx, daoCounterKey, id+1); err != nil {
		return 0, err
	}
	return id, nil
}

// initProposalCounter is written once when the dao is created.
func initProposalCounter(tx store.Txn, daoID uint64) error {
	return setCount(tx, proposalCounterKey(daoID), 0)
}

// allocateProposalID hands out the next per-dao proposal id. The counter must
// have been initialised by createDAO.
func allocateProposalID(tx store.Txn, daoID uint64) (uint64, error) {
	key := proposalCounterKey(daoID)
	id, ok, err := getCount(tx, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fail(KindNotFound, "proposal counter of dao %d", daoID)
	}
	if id == ^uint64(0) {
		return 0, fail(KindInvalidParams, "proposal id space exhausted")
	}
	if err := setCount(tx, key, id+1); err != nil {
		return 0, err
	}
	return id, nil
}
