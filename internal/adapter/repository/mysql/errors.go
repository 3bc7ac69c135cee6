package mysql

import (
	"errors"
	"fmt"
	"strings"

	loanDomain "loans-service/internal/domain/loan"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ER_DUP_ENTRY
const mysqlDuplicateEntry = 1062

func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if isDuplicateKey(err) {
		return fmt.Errorf("%w: %v", loanDomain.ErrDuplicateKey, err)
	}
	return err
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysqldrv.MySQLError
	if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		return true
	}
	// sqlite without TranslateError
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
