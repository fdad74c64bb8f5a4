package environment_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinto/internal/adapters/envvar"
	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports/mocks"
	"go.trai.ch/pinto/internal/engine/environment"
	"go.uber.org/mock/gomock"
)

type condaFixture struct {
	fs     afero.Fs
	conda  *mocks.MockCondaClient
	runner *mocks.MockCommandRunner
	logger *mocks.MockLogger
}

func newCondaFixture(t *testing.T) *condaFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &condaFixture{
		fs:     afero.NewMemMapFs(),
		conda:  mocks.NewMockCondaClient(ctrl),
		runner: mocks.NewMockCommandRunner(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
}

func (f *condaFixture) build(p *domain.Project) (*environment.CondaEnvironment, error) {
	return environment.NewCondaEnvironment(p, f.fs, f.conda, f.runner, envvar.New(), f.logger)
}

func (f *condaFixture) mustBuild(t *testing.T, p *domain.Project) *environment.CondaEnvironment {
	t.Helper()
	env, err := f.build(p)
	require.NoError(t, err)
	return env
}

func withBaseEnv(baseEnv string) *domain.Project {
	return &domain.Project{
		Name:   "proj",
		Path:   "/work/group/proj",
		Config: domain.ProjectConfig{BaseEnv: baseEnv},
	}
}

func TestCondaEnvironment_ConfiguredIdentity(t *testing.T) {
	tests := []struct {
		name        string
		baseEnv     string
		files       map[string]string
		wantName    string
		wantBaseEnv string
	}{
		{
			name:        "literal name",
			baseEnv:     "analysis",
			wantName:    "analysis",
			wantBaseEnv: "analysis",
		},
		{
			name:        "literal base name is specialized",
			baseEnv:     "ml-base",
			wantName:    "ml-proj",
			wantBaseEnv: "ml-base",
		},
		{
			name:        "relative environment file",
			baseEnv:     "../environment.yml",
			files:       map[string]string{"/work/group/environment.yml": "channels:\n  - conda-forge\nname: shared-base\n"},
			wantName:    "shared-proj",
			wantBaseEnv: "/work/group/environment.yml",
		},
		{
			name:        "absolute environment file",
			baseEnv:     "/envs/tools.yaml",
			files:       map[string]string{"/envs/tools.yaml": "name: tools\n"},
			wantName:    "tools",
			wantBaseEnv: "/envs/tools.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCondaFixture(t)
			for path, content := range tt.files {
				writeFile(t, f.fs, path, content)
			}

			env := f.mustBuild(t, withBaseEnv(tt.baseEnv))
			assert.Equal(t, tt.wantName, env.Name())
			assert.Equal(t, tt.wantBaseEnv, env.BaseEnv())
		})
	}
}

func TestCondaEnvironment_ConfiguredFileWithoutName(t *testing.T) {
	f := newCondaFixture(t)
	writeFile(t, f.fs, "/work/group/proj/env.yaml", "dependencies:\n  - python\n")

	_, err := f.build(withBaseEnv("env.yaml"))
	require.ErrorIs(t, err, domain.ErrMissingEnvName)
}

func TestCondaEnvironment_ConfiguredFileMissing(t *testing.T) {
	f := newCondaFixture(t)

	_, err := f.build(withBaseEnv("env.yaml"))
	require.ErrorIs(t, err, domain.ErrEnvironmentFileReadFailed)
}

func TestCondaEnvironment_DiscoveredIdentity(t *testing.T) {
	deep := &domain.Project{Name: "proj", Path: "/repo/libs/group/proj"}

	tests := []struct {
		name     string
		files    map[string]string
		wantName string
		wantFile string
	}{
		{
			name:     "file in project directory is authoritative",
			files:    map[string]string{"/repo/libs/group/proj/environment.yaml": "name: custom-base\n"},
			wantName: "custom-base",
			wantFile: "/repo/libs/group/proj/environment.yaml",
		},
		{
			name:     "ancestor -base template is specialized",
			files:    map[string]string{"/repo/libs/environment.yaml": "name: shared-base\n"},
			wantName: "shared-proj",
			wantFile: "/repo/libs/environment.yaml",
		},
		{
			name:     "ancestor plain name adopts project name",
			files:    map[string]string{"/repo/libs/group/environment.yml": "name: shared\n"},
			wantName: "proj",
			wantFile: "/repo/libs/group/environment.yml",
		},
		{
			name: "nearest file wins",
			files: map[string]string{
				"/repo/environment.yaml":           "name: top-base\n",
				"/repo/libs/group/environment.yml": "name: group-base\n",
			},
			wantName: "group-proj",
			wantFile: "/repo/libs/group/environment.yml",
		},
		{
			name: "yaml preferred over yml in one directory",
			files: map[string]string{
				"/repo/environment.yaml": "name: a-base\n",
				"/repo/environment.yml":  "name: b-base\n",
			},
			wantName: "a-proj",
			wantFile: "/repo/environment.yaml",
		},
		{
			name:     "filesystem root is searched",
			files:    map[string]string{"/environment.yaml": "name: root-base\n"},
			wantName: "root-proj",
			wantFile: "/environment.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCondaFixture(t)
			require.NoError(t, f.fs.MkdirAll(deep.Path, 0o755))
			for path, content := range tt.files {
				writeFile(t, f.fs, path, content)
			}

			env := f.mustBuild(t, deep)
			assert.Equal(t, tt.wantName, env.Name())
			assert.Equal(t, tt.wantFile, env.BaseEnv())
		})
	}
}

func TestCondaEnvironment_NoEnvironmentFile(t *testing.T) {
	f := newCondaFixture(t)
	require.NoError(t, f.fs.MkdirAll("/repo/proj", 0o755))

	_, err := f.build(&domain.Project{Name: "proj", Path: "/repo/proj"})
	require.ErrorIs(t, err, domain.ErrNoEnvironmentFile)
}

func TestCondaEnvironment_Exists(t *testing.T) {
	f := newCondaFixture(t)
	env := f.mustBuild(t, withBaseEnv("analysis"))

	f.conda.EXPECT().EnvNames(gomock.Any()).Return([]string{"base", "analysis-old"}, nil)
	ok, err := env.Exists(context.Background())
	require.NoError(t, err)
	assert.False(t, ok, "membership must be exact")

	f.conda.EXPECT().EnvNames(gomock.Any()).Return([]string{"base", "analysis"}, nil)
	ok, err = env.Exists(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCondaEnvironment_CreateTwice(t *testing.T) {
	f := newCondaFixture(t)
	env := f.mustBuild(t, withBaseEnv("ml-base"))
	ctx := context.Background()

	gomock.InOrder(
		f.conda.EXPECT().EnvNames(gomock.Any()).Return([]string{"base", "ml-base"}, nil).Times(2),
		f.conda.EXPECT().Clone(gomock.Any(), "ml-proj", "ml-base").Return(nil).Times(1),
		f.conda.EXPECT().EnvNames(gomock.Any()).Return([]string{"base", "ml-base", "ml-proj"}, nil),
	)
	f.logger.EXPECT().Info("Creating environment ml-proj by cloning from environment ml-base")
	f.logger.EXPECT().Warn("Environment ml-proj already exists")

	require.NoError(t, env.Create(ctx))
	require.NoError(t, env.Create(ctx))
}

func TestCondaEnvironment_CreateMissingCloneSource(t *testing.T) {
	f := newCondaFixture(t)
	env := f.mustBuild(t, withBaseEnv("ml-base"))

	f.conda.EXPECT().EnvNames(gomock.Any()).Return([]string{"base"}, nil).Times(2)

	err := env.Create(context.Background())
	require.ErrorIs(t, err, domain.ErrNoBaseEnvironment)
}

func TestCondaEnvironment_CreateFromFile(t *testing.T) {
	t.Run("file declares this environment", func(t *testing.T) {
		f := newCondaFixture(t)
		writeFile(t, f.fs, "/work/group/proj/environment.yaml", "name: proj-env\n")
		env := f.mustBuild(t, &domain.Project{Name: "proj", Path: "/work/group/proj"})

		f.conda.EXPECT().EnvNames(gomock.Any()).Return([]string{"base"}, nil).Times(2)
		f.logger.EXPECT().Info("Creating conda environment proj-env from environment file /work/group/proj/environment.yaml")
		f.conda.EXPECT().CreateFromFile(gomock.Any(), "/work/group/proj/environment.yaml").Return(nil)

		require.NoError(t, env.Create(context.Background()))
	})

	t.Run("template is created then cloned", func(t *testing.T) {
		f := newCondaFixture(t)
		writeFile(t, f.fs, "/work/environment.yaml", "name: shared-base\n")
		env := f.mustBuild(t, &domain.Project{Name: "proj", Path: "/work/group/proj"})
		require.Equal(t, "shared-proj", env.Name())

		gomock.InOrder(
			f.conda.EXPECT().EnvNames(gomock.Any()).Return([]string{"base"}, nil).Times(2),
			f.conda.EXPECT().CreateFromFile(gomock.Any(), "/work/environment.yaml").Return(nil),
			f.conda.EXPECT().EnvNames(gomock.Any()).Return([]string{"base", "shared-base"}, nil),
			f.conda.EXPECT().Clone(gomock.Any(), "shared-proj", "shared-base").Return(nil),
		)
		f.logger.EXPECT().Info(gomock.Any()).Times(2)

		require.NoError(t, env.Create(context.Background()))
	})

	t.Run("existing template is cloned", func(t *testing.T) {
		f := newCondaFixture(t)
		writeFile(t, f.fs, "/work/environment.yaml", "name: shared-base\n")
		env := f.mustBuild(t, &domain.Project{Name: "proj", Path: "/work/group/proj"})

		f.conda.EXPECT().EnvNames(gomock.Any()).Return([]string{"base", "shared-base"}, nil).Times(3)
		f.conda.EXPECT().Clone(gomock.Any(), "shared-proj", "shared-base").Return(nil)
		f.logger.EXPECT().Info("Creating environment shared-proj by cloning from environment shared-base")

		require.NoError(t, env.Create(context.Background()))
	})

	t.Run("creation failure aborts", func(t *testing.T) {
		f := newCondaFixture(t)
		writeFile(t, f.fs, "/work/environment.yaml", "name: shared-base\n")
		env := f.mustBuild(t, &domain.Project{Name: "proj", Path: "/work/group/proj"})

		f.conda.EXPECT().EnvNames(gomock.Any()).Return([]string{"base"}, nil).Times(2)
		f.logger.EXPECT().Info(gomock.Any())
		f.conda.EXPECT().CreateFromFile(gomock.Any(), gomock.Any()).Return(domain.ErrCondaCreateFailed)

		require.ErrorIs(t, env.Create(context.Background()), domain.ErrCondaCreateFailed)
	})
}

func TestCondaEnvironment_Contains(t *testing.T) {
	f := newCondaFixture(t)
	env := f.mustBuild(t, withBaseEnv("analysis"))

	listing := "# packages in environment at /opt/conda/envs/analysis:\n" +
		"numpy                     1.26.0          py311h_0\n" +
		"my-lib                    0.1.0           pypi_0    pypi\n" +
		"my-lib-extras             0.1.0           pypi_0    pypi\n"
	f.conda.EXPECT().ListPackages(gomock.Any(), "analysis").Return(listing, nil).AnyTimes()

	tests := []struct {
		name string
		want bool
	}{
		{"my_lib", true},
		{"my-lib", true},
		{"numpy", true},
		{"my", false},
		{"scipy", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := env.Contains(context.Background(), &domain.Project{Name: tt.name})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestCondaEnvironment_Install(t *testing.T) {
	t.Setenv("PINTO_POETRY_EXE", "")

	f := newCondaFixture(t)
	env := f.mustBuild(t, withBaseEnv("analysis"))

	gomock.InOrder(
		f.runner.EXPECT().LookPath("poetry").Return("/usr/local/bin/poetry", nil),
		f.conda.EXPECT().Run(gomock.Any(), "analysis", []string{
			"/usr/local/bin/poetry", "--directory", "/work/group/proj", "update", "--extras", "gpu",
		}).Return(nil),
		f.conda.EXPECT().RootPrefix(gomock.Any()).Return("/opt/conda", nil),
		f.conda.EXPECT().Invalidate("/opt/conda/envs/analysis"),
	)

	require.NoError(t, env.Install(context.Background(), domain.InstallOptions{Extras: []string{"gpu"}, Update: true}))
}

func TestCondaEnvironment_InstallFailureSkipsInvalidate(t *testing.T) {
	f := newCondaFixture(t)
	env := f.mustBuild(t, withBaseEnv("analysis"))

	f.runner.EXPECT().LookPath(gomock.Any()).Return("", os.ErrNotExist)
	f.conda.EXPECT().Run(gomock.Any(), "analysis", []string{"poetry", "--directory", "/work/group/proj", "install"}).
		Return(&domain.ExitError{Code: 1})

	err := env.Install(context.Background(), domain.InstallOptions{})
	code, ok := domain.ExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 1, code)
}

func TestCondaEnvironment_Run(t *testing.T) {
	t.Setenv("CONDA_PREFIX", "/opt/conda")
	t.Setenv("LD_LIBRARY_PATH", "/usr/lib")

	tests := []struct {
		name    string
		append  bool
		wantLib string
	}{
		{"flag off", false, "/usr/lib"},
		{"flag on", true, strings.Join([]string{"/opt/conda/envs/analysis/lib", "/opt/conda/lib", "/usr/lib"}, string(os.PathListSeparator))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCondaFixture(t)
			p := withBaseEnv("analysis")
			p.Config.Conda.AppendBaseLDLibraryPath = tt.append
			env := f.mustBuild(t, p)

			f.conda.EXPECT().Run(gomock.Any(), "analysis", []string{"python", "-c", "pass"}).DoAndReturn(
				func(context.Context, string, []string) error {
					assert.Equal(t, tt.wantLib, os.Getenv("LD_LIBRARY_PATH"))
					return nil
				})

			require.NoError(t, env.Run(context.Background(), "python", "-c", "pass"))
			assert.Equal(t, "/usr/lib", os.Getenv("LD_LIBRARY_PATH"))
		})
	}
}

func TestCondaEnvironment_RunWithoutActivePrefix(t *testing.T) {
	t.Setenv("CONDA_PREFIX", "")
	require.NoError(t, os.Unsetenv("CONDA_PREFIX"))
	t.Setenv("LD_LIBRARY_PATH", "/usr/lib")

	f := newCondaFixture(t)
	p := withBaseEnv("analysis")
	p.Config.Conda.AppendBaseLDLibraryPath = true
	env := f.mustBuild(t, p)

	f.conda.EXPECT().Run(gomock.Any(), "analysis", []string{"python"}).DoAndReturn(
		func(context.Context, string, []string) error {
			assert.Equal(t, "/usr/lib", os.Getenv("LD_LIBRARY_PATH"))
			return nil
		})

	require.NoError(t, env.Run(context.Background(), "python"))
}

func TestCondaEnvironment_Root(t *testing.T) {
	f := newCondaFixture(t)
	env := f.mustBuild(t, withBaseEnv("analysis"))

	f.conda.EXPECT().RootPrefix(gomock.Any()).Return("/opt/conda", nil)

	root, err := env.Root(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/opt/conda/envs/analysis", root)
}

func TestCondaEnvironment_RunScopesLibraryPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newCondaFixture(t)
	mutator := mocks.NewMockEnvMutator(ctrl)

	p := withBaseEnv("analysis")
	p.Config.Conda.AppendBaseLDLibraryPath = true
	env, err := environment.NewCondaEnvironment(p, f.fs, f.conda, f.runner, mutator, f.logger)
	require.NoError(t, err)

	libs := "/opt/conda/envs/analysis/lib" + string(os.PathListSeparator) + "/opt/conda/lib"
	gomock.InOrder(
		mutator.EXPECT().Lookup("CONDA_PREFIX").Return("/opt/conda", true),
		mutator.EXPECT().Scoped(domain.EnvAppend, map[string]string{"LD_LIBRARY_PATH": libs}, gomock.Any()).
			DoAndReturn(func(_ domain.EnvAction, _ map[string]string, fn func() error) error {
				return fn()
			}),
	)
	f.conda.EXPECT().Run(gomock.Any(), "analysis", []string{"python"}).Return(nil)

	require.NoError(t, env.Run(context.Background(), "python"))
}
