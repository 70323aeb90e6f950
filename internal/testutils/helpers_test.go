package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/runner"
)

func TestMustRun_RecordsLines(t *testing.T) {
	root := domain.NewContext("root")
	child := domain.NewContext("child")
	root.AddContext(child)
	child.AddExample(domain.NewExample("works", func() {}))
	child.AddExample(domain.NewExample("later", nil))

	rec := &Recorder{}
	report := MustRun(t, root, nil, runner.WithFormatter(rec))

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, []string{"ctx:child", "ex:works:1:passed", "ex:later:1:pending"}, rec.Lines)
}
