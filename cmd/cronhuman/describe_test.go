package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		stdin   string
		want    string
		wantErr error
	}{
		{
			name: "인자로 전달된 표현식",
			args: []string{"0 9 * * 1-5", "*/15 * * * *"},
			want: "0 9 * * 1-5\tWeekdays at 9 AM\n*/15 * * * *\tEvery 15 minutes\n",
		},
		{
			name: "공백이 섞인 표현식은 원본 그대로 출력",
			args: []string{"  0   2 *  * *  "},
			want: "  0   2 *  * *  \tDaily at 2 AM\n",
		},
		{
			name: "공백뿐인 인자는 건너뜀",
			args: []string{"   ", "0 2 * * *"},
			want: "0 2 * * *\tDaily at 2 AM\n",
		},
		{
			name: "해석할 수 없는 표현식은 원본 출력",
			args: []string{"not a cron"},
			want: "not a cron\tnot a cron\n",
		},
		{
			name:  "표준 입력",
			stdin: "# 주석\n  # 들여쓴 주석\n\n0 2 * * *\n  */15 * * * *  \n",
			want:  "0 2 * * *\tDaily at 2 AM\n  */15 * * * *  \tEvery 15 minutes\n",
		},
		{
			name: "실행 가능 여부 검사",
			args: []string{"--check", "0 2 * * *"},
			want: "0 2 * * *\tDaily at 2 AM\tvalid\n",
		},
		{
			name:    "실행할 수 없는 표현식 검사",
			args:    []string{"-c", "0 2 * * *", "0 25 * * *"},
			want:    "0 2 * * *\tDaily at 2 AM\tvalid\n0 25 * * *\t0 25 * * *\tinvalid\n",
			wantErr: errCheckFailed,
		},
		{
			name: "빈 입력",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout bytes.Buffer
			err := runDescribe(tt.args, strings.NewReader(tt.stdin), &stdout)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestRunDescribe_Verbose(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	require.NoError(t, runDescribe([]string{"--verbose", "0 30 8 1 * *"}, strings.NewReader(""), &stdout))

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "0 30 8 1 * *\tMonthly on the 1st at 8:30 AM", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  "))
	assert.Greater(t, len(strings.TrimSpace(lines[1])), 0)
}

func TestRunDescribe_LengthLimit(t *testing.T) {
	t.Parallel()

	const valid = "0 0 2 * * *"

	t.Run("1000자를 넘는 인자는 공백만 덧붙였어도 원본 반환", func(t *testing.T) {
		t.Parallel()

		padded := valid + strings.Repeat(" ", 1000)
		require.Greater(t, len(padded), 1000)

		var stdout bytes.Buffer
		require.NoError(t, runDescribe([]string{padded}, strings.NewReader(""), &stdout))
		assert.Equal(t, padded+"\t"+padded+"\n", stdout.String())
	})

	t.Run("1000자를 넘는 표준 입력 줄도 원본 반환", func(t *testing.T) {
		t.Parallel()

		padded := strings.Repeat(" ", 1000) + valid

		var stdout bytes.Buffer
		require.NoError(t, runDescribe(nil, strings.NewReader(padded+"\n"), &stdout))
		assert.Equal(t, padded+"\t"+padded+"\n", stdout.String())
	})

	t.Run("정확히 1000자는 해석", func(t *testing.T) {
		t.Parallel()

		boundary := valid + strings.Repeat(" ", 1000-len(valid))
		require.Len(t, boundary, 1000)

		var stdout bytes.Buffer
		require.NoError(t, runDescribe([]string{boundary}, strings.NewReader(""), &stdout))
		assert.Equal(t, boundary+"\tDaily at 2 AM\n", stdout.String())
	})
}

func TestReadExpressions(t *testing.T) {
	t.Parallel()

	exprs, err := readExpressions(strings.NewReader("a\n  \n# skip\n\t# skip\n b \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", " b "}, exprs)
}
