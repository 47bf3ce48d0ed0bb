package contract

import (
	"okinoko_governance/contract/dao"
	"okinoko_governance/store"
)

// loadTreasury retrieves the native-value record of the dao treasury.
func loadTreasury(tx store.Txn, daoID uint64) (*dao.Treasury, error) {
	return loadRecord(tx, treasuryKey(daoID), "treasury", dao.DecodeTreasury)
}

// saveTreasury sets the balance and timestamp of the dao treasury.
func saveTreasury(tx store.Txn, t *dao.Treasury) error {
	return saveRecord(tx, treasuryKey(t.DAOID), "treasury", dao.EncodeTreasury(t))
}

// treasuryOrEmpty treats a missing treasury like a zero balance, which only
// happens for daos written before the treasury record existed.
func treasuryOrEmpty(tx store.Txn, daoID uint64) (*dao.Treasury, error) {
	t, err := loadTreasury(tx, daoID)
	if err != nil || t != nil {
		return t, err
	}
	return &dao.Treasury{DAOID: daoID}, nil
}
