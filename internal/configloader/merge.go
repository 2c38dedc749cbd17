package configloader

import "github.com/abhinandh-s/vimwiki-syntax/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointer flags: override overwrites base if override is non-nil
//   - Slices: override replaces base entirely if override is non-nil
//
// Neither input is modified.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := base.Clone()

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// Debug can only be switched on; false is indistinguishable from unset.
	if override.Debug {
		result.Debug = true
	}

	if override.Output.Hints != nil {
		result.Output.Hints = override.Output.Hints
	}
	if override.Output.Source != nil {
		result.Output.Source = override.Output.Source
	}
	if override.Output.Summary != nil {
		result.Output.Summary = override.Output.Summary
	}

	if override.Extensions != nil {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.Ignore != nil {
		result.Ignore = append([]string(nil), override.Ignore...)
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
