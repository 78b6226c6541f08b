package alert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/alertbox/pkg/alert"
	"github.com/dmitrymomot/alertbox/pkg/theme"
)

func TestNewBuilder_Defaults(t *testing.T) {
	t.Parallel()

	cfg := alert.NewBuilder().Config()

	assert.NotEmpty(t, cfg.ID)
	assert.Equal(t, alert.SeverityInfo, cfg.Severity)
	assert.Equal(t, alert.VariantBanner, cfg.Variant)
	assert.Equal(t, alert.IconSizeM, cfg.IconSize)
	assert.True(t, cfg.Closeable)
	assert.True(t, cfg.ShowIcon)
	assert.False(t, cfg.AutoHide)
	assert.False(t, cfg.Permanent)
	assert.Equal(t, alert.DefaultTimeoutMs, cfg.TimeoutMs)
	assert.Empty(t, cfg.Title)
	assert.Equal(t, alert.DefaultPosition, alert.NewBuilder().CurrentPosition())
}

func TestNewBuilder_UniqueIDs(t *testing.T) {
	t.Parallel()

	a := alert.NewBuilder().Config().ID
	b := alert.NewBuilder().Config().ID
	assert.NotEqual(t, a, b)
}

func TestNewBuilder_Title(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello", alert.NewBuilder(alert.WithTitle("Hello")).Config().Title)
	assert.Empty(t, alert.NewBuilder(alert.WithTitle("")).Config().Title)
}

func TestBuilder_Title(t *testing.T) {
	t.Parallel()

	b := alert.NewBuilder().Title("Saved")
	require.NoError(t, b.Err())
	assert.Equal(t, "Saved", b.Config().Title)

	b.Title("")
	require.EqualError(t, b.Err(), "Title cannot be empty")
	assert.ErrorIs(t, b.Err(), alert.ErrInvalidArgument)
	assert.Equal(t, "Saved", b.Config().Title, "failed setter must not change the draft")
}

func TestBuilder_DescriptionAndMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "body", alert.NewBuilder().Description("body").Config().Description)
	assert.Equal(t, "msg", alert.NewBuilder().Message("msg").Config().Description)
	assert.Equal(t, "", alert.NewBuilder().Message("x").Description("").Config().Description)
}

func TestBuilder_Variant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		set  func(*alert.Builder) *alert.Builder
		want alert.Variant
	}{
		{"banner", (*alert.Builder).Banner, alert.VariantBanner},
		{"bordered", (*alert.Builder).Bordered, alert.VariantBordered},
		{"elevated", (*alert.Builder).Elevated, alert.VariantElevated},
		{"minimal", (*alert.Builder).Minimal, alert.VariantMinimal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := tt.set(alert.NewBuilder().Variant(alert.VariantElevated))
			require.NoError(t, b.Err())
			assert.Equal(t, tt.want, b.Config().Variant)
		})
	}

	for _, v := range []alert.Variant{0, 5, -1} {
		b := alert.NewBuilder().Variant(v)
		assert.ErrorIs(t, b.Err(), alert.ErrInvalidArgument)
		assert.Equal(t, alert.VariantBanner, b.Config().Variant)
	}
	assert.EqualError(t, alert.NewBuilder().Variant(9).Err(), "Card style must be between 1 and 4, got 9")
}

func TestBuilder_SeverityDefaultIcons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		set      func(*alert.Builder) *alert.Builder
		severity alert.Severity
		icon     string
	}{
		{"success", (*alert.Builder).Success, alert.SeveritySuccess, "heroicon-o-check-circle"},
		{"danger", (*alert.Builder).Danger, alert.SeverityDanger, "heroicon-o-x-circle"},
		{"error alias", (*alert.Builder).Error, alert.SeverityDanger, "heroicon-o-x-circle"},
		{"warning", (*alert.Builder).Warning, alert.SeverityWarning, "heroicon-o-exclamation-triangle"},
		{"info", (*alert.Builder).Info, alert.SeverityInfo, "heroicon-o-information-circle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := tt.set(alert.NewBuilder()).Config()
			assert.Equal(t, tt.severity, cfg.Severity)
			assert.Equal(t, tt.icon, cfg.Icon)

			custom := tt.set(alert.NewBuilder().Icon("heroicon-o-bell")).Config()
			assert.Equal(t, "heroicon-o-bell", custom.Icon, "caller icon is preserved")
		})
	}
}

func TestBuilder_SeverityColors(t *testing.T) {
	t.Parallel()

	t.Run("fallback palette", func(t *testing.T) {
		t.Parallel()

		cfg := alert.NewBuilder().Success().Config()
		assert.Equal(t, "#047857", cfg.TitleColor)
		assert.Equal(t, "#10b981", cfg.DescriptionColor)
		assert.Equal(t, "#10b981", cfg.IconColor)
	})

	t.Run("color source wins over fallback", func(t *testing.T) {
		t.Parallel()

		src := theme.Palette{theme.Warning: {Title: "darkorange"}}
		cfg := alert.NewBuilder(alert.WithColors(src)).Warning().Config()
		assert.Equal(t, "darkorange", cfg.TitleColor)
		assert.Equal(t, "#f59e0b", cfg.DescriptionColor, "missing entries fall back")
		assert.Equal(t, "#f59e0b", cfg.IconColor)
	})

	t.Run("caller colors are kept", func(t *testing.T) {
		t.Parallel()

		cfg := alert.NewBuilder().
			TitleColor("red").
			DescriptionColor("#000").
			IconColor("rgb(1,2,3)").
			Danger().
			Config()
		assert.Equal(t, "red", cfg.TitleColor)
		assert.Equal(t, "#000", cfg.DescriptionColor)
		assert.Equal(t, "rgb(1,2,3)", cfg.IconColor)
	})

	t.Run("hidden icon stays hidden", func(t *testing.T) {
		t.Parallel()

		cfg := alert.NewBuilder().NoIcon().Info().Config()
		assert.False(t, cfg.ShowIcon)
		assert.Empty(t, cfg.Icon)
		assert.Empty(t, cfg.IconColor)
		assert.Equal(t, "#1d4ed8", cfg.TitleColor)
	})
}

func TestBuilder_Icon(t *testing.T) {
	t.Parallel()

	b := alert.NewBuilder().NoIcon().Icon("heroicon-o-bell")
	require.NoError(t, b.Err())
	cfg := b.Config()
	assert.Equal(t, "heroicon-o-bell", cfg.Icon)
	assert.True(t, cfg.ShowIcon, "setting an icon re-enables display")

	b.Icon("")
	assert.EqualError(t, b.Err(), "Icon cannot be empty")
	assert.Equal(t, "heroicon-o-bell", b.Config().Icon)
}

func TestBuilder_NoIcon(t *testing.T) {
	t.Parallel()

	b := alert.NewBuilder().
		Icon("heroicon-o-bell").
		IconColor("#fff").
		IconXL().
		NoIcon(true)

	cfg := b.Config()
	assert.False(t, cfg.ShowIcon)
	assert.Empty(t, cfg.Icon)
	assert.Empty(t, cfg.IconColor)
	assert.Equal(t, alert.DefaultIconSize, cfg.IconSize)
	assert.False(t, cfg.HasIcon())

	cfg = b.NoIcon(false).Config()
	assert.True(t, cfg.ShowIcon)
	assert.Empty(t, cfg.Icon)
}

func TestBuilder_IconSize(t *testing.T) {
	t.Parallel()

	t.Run("explicit sizes", func(t *testing.T) {
		t.Parallel()

		for _, size := range []string{"xs", "s", "m", "lg", "xl"} {
			b := alert.NewBuilder().IconSize(size)
			require.NoError(t, b.Err())
			assert.Equal(t, alert.IconSize(size), b.Config().IconSize)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, alert.IconSizeXL, alert.NewBuilder().IconSize("XL").Config().IconSize)
		assert.Equal(t, alert.IconSizeLG, alert.NewBuilder().IconSize("Lg").Config().IconSize)
	})

	t.Run("convenience setters", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			set  func(*alert.Builder) *alert.Builder
			want alert.IconSize
		}{
			{(*alert.Builder).IconXS, alert.IconSizeXS},
			{(*alert.Builder).IconS, alert.IconSizeS},
			{(*alert.Builder).IconM, alert.IconSizeM},
			{(*alert.Builder).IconLG, alert.IconSizeLG},
			{(*alert.Builder).IconXL, alert.IconSizeXL},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, tt.set(alert.NewBuilder()).Config().IconSize)
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		t.Parallel()

		b := alert.NewBuilder().IconLG().IconSize("invalid")
		require.EqualError(t, b.Err(), "Icon size must be one of: xs, s, m, lg, xl, got invalid")
		assert.ErrorIs(t, b.Err(), alert.ErrInvalidArgument)
		assert.Equal(t, alert.IconSizeLG, b.Config().IconSize)
	})
}

func TestBuilder_Colors(t *testing.T) {
	t.Parallel()

	valid := []string{"#fff", "#112233", "rgb(1,2,3)", "hsl(0,0%,0%)", "red"}
	for _, c := range valid {
		t.Run(c, func(t *testing.T) {
			t.Parallel()

			b := alert.NewBuilder().IconColor(c).TitleColor(c).DescriptionColor(c)
			require.NoError(t, b.Err())
			cfg := b.Config()
			assert.Equal(t, c, cfg.IconColor)
			assert.Equal(t, c, cfg.TitleColor)
			assert.Equal(t, c, cfg.DescriptionColor)
		})
	}

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		b := alert.NewBuilder().TitleColor("123")
		require.EqualError(t, b.Err(), "Invalid color format: 123")
		assert.Empty(t, b.Config().TitleColor)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		for _, set := range []func(*alert.Builder, string) *alert.Builder{
			(*alert.Builder).IconColor,
			(*alert.Builder).TitleColor,
			(*alert.Builder).DescriptionColor,
		} {
			b := set(alert.NewBuilder(), "")
			assert.ErrorIs(t, b.Err(), alert.ErrInvalidArgument)
		}
	})
}

func TestBuilder_AutoDisappear(t *testing.T) {
	t.Parallel()

	for _, seconds := range []int{0, -1} {
		b := alert.NewBuilder().AutoDisappear(seconds)
		require.EqualError(t, b.Err(), "Timeout must be greater than 0")
		assert.False(t, b.Config().AutoHide)
	}

	cfg := alert.NewBuilder().Permanent().AutoDisappear(5).Config()
	assert.True(t, cfg.AutoHide)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.False(t, cfg.Permanent)
	assert.True(t, cfg.ShouldAutoHide())
}

func TestBuilder_Permanent(t *testing.T) {
	t.Parallel()

	cfg := alert.NewBuilder().AutoDisappear(3).Permanent(true).Config()
	assert.True(t, cfg.Permanent)
	assert.False(t, cfg.AutoHide)
	assert.False(t, cfg.ShouldAutoHide())

	cfg = alert.NewBuilder().Permanent().Permanent(false).Config()
	assert.False(t, cfg.Permanent)
}

func TestBuilder_Passthrough(t *testing.T) {
	t.Parallel()

	cfg := alert.NewBuilder().
		Closeable(false).
		Classes("my-alert <weird>").
		Style("margin: 0; ;;").
		Config()

	assert.False(t, cfg.Closeable)
	assert.Equal(t, "my-alert <weird>", cfg.Classes)
	assert.Equal(t, "margin: 0; ;;", cfg.Style)
}

func TestBuilder_Position(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		set  func(*alert.Builder) *alert.Builder
		want string
	}{
		{"page header after", (*alert.Builder).PageHeaderAfter, alert.PositionPageHeaderAfter},
		{"page start", (*alert.Builder).PageStart, alert.PositionPageStart},
		{"sidebar nav end", (*alert.Builder).SidebarNavEnd, alert.PositionSidebarNavEnd},
		{"topbar start", (*alert.Builder).TopbarStart, alert.PositionTopbarStart},
		{"page end", (*alert.Builder).PageEnd, alert.PositionPageEnd},
		{"footer", (*alert.Builder).Footer, alert.PositionFooter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.set(alert.NewBuilder().Position("custom")).CurrentPosition())
		})
	}

	b := alert.NewBuilder().Footer().RenderHook("custom::hook").Position("last")
	assert.Equal(t, "last", b.CurrentPosition())
}

func TestBuilder_FirstErrorIsSticky(t *testing.T) {
	t.Parallel()

	b := alert.NewBuilder().
		Title("").
		IconSize("huge").
		Description("still applied")

	assert.EqualError(t, b.Err(), "Title cannot be empty")
	assert.Equal(t, "still applied", b.Config().Description)
}

func TestBuilder_Show(t *testing.T) {
	t.Parallel()

	t.Run("without registry", func(t *testing.T) {
		t.Parallel()

		err := alert.NewBuilder().Show()
		assert.ErrorIs(t, err, alert.ErrNoRegistry)
	})

	t.Run("validation error blocks commit", func(t *testing.T) {
		t.Parallel()

		reg := alert.NewRegistry()
		err := reg.Make("x").AutoDisappear(0).Show()
		assert.ErrorIs(t, err, alert.ErrInvalidArgument)
		assert.Equal(t, 0, reg.Total())
	})

	t.Run("empty position is rejected", func(t *testing.T) {
		t.Parallel()

		reg := alert.NewRegistry()
		err := reg.Make("x").Position("").Show()
		assert.EqualError(t, err, "Position cannot be empty")
		assert.Equal(t, 0, reg.Total())
	})

	t.Run("commits at current position", func(t *testing.T) {
		t.Parallel()

		reg := alert.NewRegistry()
		require.NoError(t, reg.Make("Hello").Show())
		assert.Equal(t, 1, reg.Count(alert.DefaultPosition))
	})

	t.Run("second show adds the alert again", func(t *testing.T) {
		t.Parallel()

		reg := alert.NewRegistry()
		b := reg.Make("twice").Footer()
		require.NoError(t, b.Show())
		require.NoError(t, b.Show())

		list := reg.Alerts(alert.PositionFooter)
		require.Len(t, list, 2)
		assert.Equal(t, list[0].ID, list[1].ID)
	})
}

func TestBuilder_EndToEnd(t *testing.T) {
	t.Parallel()

	reg := alert.NewRegistry()

	err := reg.Make("Saved").
		Success().
		IconLG().
		Description("Test description").
		Position("footer").
		Show()
	require.NoError(t, err)

	list := reg.Alerts("footer")
	require.Len(t, list, 1)
	assert.Equal(t, alert.SeveritySuccess, list[0].Severity)
	assert.Equal(t, alert.IconSizeLG, list[0].IconSize)
	assert.Equal(t, "Saved", list[0].Title)
	assert.Equal(t, "Test description", list[0].Description)
	assert.NotEmpty(t, list[0].ID)
}
