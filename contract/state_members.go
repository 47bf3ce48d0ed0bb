package contract

import (
	"okinoko_governance/contract/dao"
	"okinoko_governance/sdk"
	"okinoko_governance/store"
)

// saveMember writes the member record under the dao scoped key.
func saveMember(tx store.Txn, daoID uint64, member *dao.Member) error {
	return saveRecord(tx, memberKey(daoID, member.Address), "member", dao.EncodeMember(member))
}

// loadMember decodes the stored member or returns nil when the address never joined.
// Nothing is memoized between calls so every guard sees the live snapshot.
func loadMember(tx store.Txn, daoID uint64, addr sdk.Address) (*dao.Member, error) {
	return loadRecord(tx, memberKey(daoID, addr), "member", dao.DecodeMember)
}
