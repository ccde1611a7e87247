package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassify_ConstraintCodes(t *testing.T) {
	for _, code := range []string{"23502", "23503", "23505", "23514"} {
		pgErr := &pgconn.PgError{Code: code, ConstraintName: "fk_assignment_course"}
		err := Classify(fmt.Errorf("insert course: %w", pgErr))

		if !errors.Is(err, ErrConstraintViolation) {
			t.Errorf("code %s: 期望匹配 ErrConstraintViolation, 实际 %v", code, err)
		}
		var got *pgconn.PgError
		if !errors.As(err, &got) || got.Code != code {
			t.Errorf("code %s: 原始 PgError 应保留在错误链中", code)
		}
	}
}

func TestClassify_PassThrough(t *testing.T) {
	plain := errors.New("connection refused")
	if got := Classify(plain); got != plain {
		t.Errorf("非 PgError 应原样返回, 实际 %v", got)
	}

	syntax := &pgconn.PgError{Code: "42601"}
	if errors.Is(Classify(syntax), ErrConstraintViolation) {
		t.Error("语法错误不应被识别为约束冲突")
	}

	if Classify(nil) != nil {
		t.Error("nil 应返回 nil")
	}
}

func TestConstraintError_MessageFallsBackToColumn(t *testing.T) {
	err := Classify(&pgconn.PgError{Code: "23502", ColumnName: "due_date"})
	var ce *ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("期望 ConstraintError, 实际 %T", err)
	}
	if ce.Column != "due_date" {
		t.Errorf("Column = %q", ce.Column)
	}
	if msg := err.Error(); msg == "" {
		t.Error("错误信息不应为空")
	}
}
