package burnsubs

import "subburn/internal/flow"

// Plugin identity as registered with the workflow engine.
const (
	ID      = "ffmpegCommandBurnSubtitles"
	Version = "1.0.0"
)

const (
	inputLanguageTags     = "language_tags"
	inputAlsoBurnUntagged = "also_burn_untaged"
	inputMaxSubtitles     = "max_subtitles"
)

// Details describes the plugin to the engine. Each call returns a fresh value.
func Details() flow.Details {
	return flow.Details{
		Name:        "Burn in subtitles",
		Description: "Burn all existing subtitle tracks into a video file",
		Style: flow.Style{
			BorderColor: "#6efefc",
		},
		Tags:            "video",
		IsStartPlugin:   false,
		PType:           "",
		RequiresVersion: "2.11.01",
		SidebarPosition: -1,
		Icon:            "faClosedCaptioning",
		Inputs: []flow.InputDetail{
			{
				Name:         inputLanguageTags,
				Label:        "Language Tag(s) to Burn (Optional)",
				Type:         "string",
				DefaultValue: "",
				InputUI:      flow.InputUI{Type: "text"},
				Tooltip: `Specify language tag/s here for the subtitle tracks you'd like to burn in.
               \nExample:\n
               eng

               \nExample:\n
               eng,jpn`,
			},
			{
				Name:         inputAlsoBurnUntagged,
				Label:        "Also Burn Un-taged Subtitles",
				Type:         "boolean",
				DefaultValue: "true",
				InputUI: flow.InputUI{
					Type: "switch",
					DisplayConditions: &flow.DisplayConditions{
						Logic: "AND",
						Sets: []flow.ConditionSet{{
							Logic: "AND",
							Inputs: []flow.InputCondition{{
								Name:      inputLanguageTags,
								Value:     "",
								Condition: "!==",
							}},
						}},
					},
				},
				Tooltip: `If enabled (default), subtitle tracks without a language tag will also be burned in.
                \nIf disabled, only subtitle tracks with a language tag matching one of those specified in
                 the Language Tag(s) to Burn field will be burned in.
                \n If no language tags are specified, all subtitle tracks will be burned in anyway.`,
			},
			{
				Name:         inputMaxSubtitles,
				Label:        "Max Amount of Subtitles to Burn",
				Type:         "number",
				DefaultValue: "2",
				InputUI: flow.InputUI{
					Type:          "slider",
					SliderOptions: &flow.SliderOptions{Min: 0, Max: 20},
				},
				Tooltip: `The maximum number of subtitle tracks to burn in.\n
      If more subtitle tracks are found, only the first X will be burned in, where X is the value specified here.\n
      Set to 0 to burn all tracks.`,
			},
		},
		Outputs: []flow.OutputDetail{
			{Number: 1, Tooltip: "Continue to next plugin"},
		},
	}
}
