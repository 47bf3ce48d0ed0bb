package contract

import (
	"okinoko_governance/contract/dao"
	"okinoko_governance/store"
)

// loadSettings returns nil when the dao never had settings written.
func loadSettings(tx store.Txn, daoID uint64) (*dao.Settings, error) {
	return loadRecord(tx, settingsKey(daoID), "settings", dao.DecodeSettings)
}

// saveSettings overwrites the whole record, there is no partial update.
func saveSettings(tx store.Txn, daoID uint64, s *dao.Settings) error {
	return saveRecord(tx, settingsKey(daoID), "settings", dao.EncodeSettings(s))
}
