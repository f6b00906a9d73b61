package pgconv

import (
	"github.com/jackc/pgx/v5/pgtype"
)

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}
