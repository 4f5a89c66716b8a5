package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateFile 경로가 읽을 수 있는 일반 파일인지 검증합니다.
// 디렉터리, 소켓, 디바이스 파일 등은 거부합니다.
func ValidateFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("파일 경로가 비어 있습니다")
	}

	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("파일이 존재하지 않습니다 (path=%q)", path)
		}
		return fmt.Errorf("파일 정보를 확인하는 중 오류가 발생했습니다 (path=%q): %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("해당 경로는 일반 파일이어야 합니다 (path=%q, mode=%s)", path, info.Mode())
	}

	// 권한 비트만으로는 ACL 등을 판단할 수 없으므로 실제로 열어봅니다.
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("파일을 읽을 수 있는 권한이 없습니다 (path=%q): %w", path, err)
	}
	_ = f.Close()

	return nil
}
