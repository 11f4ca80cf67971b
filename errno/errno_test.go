package errno

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int32
	}{
		{"nil", nil, 0},
		{"errno", syscall.ESRCH, int32(syscall.ESRCH)},
		{"wrapped", fmt.Errorf("getpgid 42: %w", syscall.EPERM), int32(syscall.EPERM)},
		{"double wrapped", fmt.Errorf("ffi: %w", fmt.Errorf("tcgetpgrp: %w", syscall.ENOTTY)), int32(syscall.ENOTTY)},
		{"unsupported", errors.ErrUnsupported, int32(syscall.EINVAL)},
		{"plain", errors.New("boom"), int32(syscall.EINVAL)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}
