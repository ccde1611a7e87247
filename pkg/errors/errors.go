package errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConstraintViolation 存储层约束冲突（非空 / 外键 / 唯一 / CHECK）
var ErrConstraintViolation = errors.New("违反数据库约束")

// PostgreSQL SQLSTATE 约束类错误码
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// ConstraintError 携带约束名的约束冲突错误，errors.Is 可匹配 ErrConstraintViolation
type ConstraintError struct {
	Code       string
	Constraint string
	Column     string
	err        error
}

func (e *ConstraintError) Error() string {
	target := e.Constraint
	if target == "" {
		target = e.Column
	}
	return fmt.Sprintf("%s (%s %s): %v", ErrConstraintViolation.Error(), e.Code, target, e.err)
}

func (e *ConstraintError) Is(target error) bool { return target == ErrConstraintViolation }

func (e *ConstraintError) Unwrap() error { return e.err }

// Classify 将 PostgreSQL 约束类错误包装为 ConstraintError，其他错误原样返回
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeNotNullViolation, codeForeignKeyViolation, codeUniqueViolation, codeCheckViolation:
		return &ConstraintError{
			Code:       pgErr.Code,
			Constraint: pgErr.ConstraintName,
			Column:     pgErr.ColumnName,
			err:        err,
		}
	default:
		return err
	}
}
