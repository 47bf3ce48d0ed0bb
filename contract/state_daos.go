package contract

import (
	"okinoko_governance/contract/dao"
	"okinoko_governance/store"
)

func loadDAO(tx store.Txn, id uint64) (*dao.DAO, error) {
	return loadRecord(tx, daoKey(id), "dao", dao.DecodeDAO)
}

func saveDAO(tx store.Txn, d *dao.DAO) error {
	return saveRecord(tx, daoKey(d.ID), "dao", dao.EncodeDAO(d))
}
