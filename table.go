// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classmerge

package classmerge

// defaultGroups returns the Tailwind CSS conflict taxonomy.
//
// Group order matters only for ties: inside one literal prefix patterns are
// tried by rank (keyword, typed, any) and then in this order.
func defaultGroups() []Group {
	return []Group{
		// Layout
		{ID: "aspect", Patterns: []string{"aspect-{any}"}},
		{ID: "container", Patterns: []string{"container"}},
		{ID: "columns", Patterns: []string{"columns-{any}"}},
		{ID: "break-after", Patterns: []string{"break-after-{auto|avoid|all|avoid-page|page|left|right|column}"}},
		{ID: "break-before", Patterns: []string{"break-before-{auto|avoid|all|avoid-page|page|left|right|column}"}},
		{ID: "break-inside", Patterns: []string{"break-inside-{auto|avoid|avoid-page|avoid-column}"}},
		{ID: "box-decoration", Patterns: []string{"box-decoration-{slice|clone}"}},
		{ID: "box", Patterns: []string{"box-{border|content}"}},
		{ID: "display", Patterns: []string{
			"block", "inline-block", "inline", "flex", "inline-flex", "table", "inline-table",
			"table-caption", "table-cell", "table-column", "table-column-group",
			"table-footer-group", "table-header-group", "table-row-group", "table-row",
			"flow-root", "grid", "inline-grid", "contents", "list-item", "hidden",
		}},
		{ID: "float", Patterns: []string{"float-{right|left|none|start|end}"}},
		{ID: "clear", Patterns: []string{"clear-{left|right|both|none|start|end}"}},
		{ID: "isolation", Patterns: []string{"isolate", "isolation-auto"}},
		{ID: "object-fit", Patterns: []string{"object-{contain|cover|fill|none|scale-down}"}},
		{ID: "object-position", Patterns: []string{"object-{any}"}},
		{ID: "overflow", Patterns: []string{"overflow-{auto|hidden|clip|visible|scroll}"}, Conflicts: []string{"overflow-x", "overflow-y"}},
		{ID: "overflow-x", Patterns: []string{"overflow-x-{auto|hidden|clip|visible|scroll}"}},
		{ID: "overflow-y", Patterns: []string{"overflow-y-{auto|hidden|clip|visible|scroll}"}},
		{ID: "overscroll", Patterns: []string{"overscroll-{auto|contain|none}"}, Conflicts: []string{"overscroll-x", "overscroll-y"}},
		{ID: "overscroll-x", Patterns: []string{"overscroll-x-{auto|contain|none}"}},
		{ID: "overscroll-y", Patterns: []string{"overscroll-y-{auto|contain|none}"}},
		{ID: "position", Patterns: []string{"static", "fixed", "absolute", "relative", "sticky"}},
		{ID: "inset", Patterns: []string{"-?inset-{any}"}, Conflicts: []string{"inset-x", "inset-y", "start", "end", "top", "right", "bottom", "left"}},
		{ID: "inset-x", Patterns: []string{"-?inset-x-{any}"}, Conflicts: []string{"right", "left"}},
		{ID: "inset-y", Patterns: []string{"-?inset-y-{any}"}, Conflicts: []string{"top", "bottom"}},
		{ID: "start", Patterns: []string{"-?start-{any}"}},
		{ID: "end", Patterns: []string{"-?end-{any}"}},
		{ID: "top", Patterns: []string{"-?top-{any}"}},
		{ID: "right", Patterns: []string{"-?right-{any}"}},
		{ID: "bottom", Patterns: []string{"-?bottom-{any}"}},
		{ID: "left", Patterns: []string{"-?left-{any}"}},
		{ID: "visibility", Patterns: []string{"visible", "invisible", "collapse"}},
		{ID: "z", Patterns: []string{"-?z-{any}"}},

		// Flexbox and grid
		{ID: "basis", Patterns: []string{"basis-{any}"}},
		{ID: "flex-direction", Patterns: []string{"flex-row", "flex-row-reverse", "flex-col", "flex-col-reverse"}},
		{ID: "flex-wrap", Patterns: []string{"flex-wrap", "flex-wrap-reverse", "flex-nowrap"}},
		{ID: "flex", Patterns: []string{"flex-{any}"}, Conflicts: []string{"basis", "grow", "shrink"}},
		{ID: "grow", Patterns: []string{"grow", "grow-{any}", "flex-grow", "flex-grow-{any}"}},
		{ID: "shrink", Patterns: []string{"shrink", "shrink-{any}", "flex-shrink", "flex-shrink-{any}"}},
		{ID: "order", Patterns: []string{"-?order-{any}"}},
		{ID: "grid-cols", Patterns: []string{"grid-cols-{any}"}},
		{ID: "col-start-end", Patterns: []string{"col-{auto}", "col-span-{any}"}},
		{ID: "col-start", Patterns: []string{"col-start-{any}"}},
		{ID: "col-end", Patterns: []string{"col-end-{any}"}},
		{ID: "grid-rows", Patterns: []string{"grid-rows-{any}"}},
		{ID: "row-start-end", Patterns: []string{"row-{auto}", "row-span-{any}"}},
		{ID: "row-start", Patterns: []string{"row-start-{any}"}},
		{ID: "row-end", Patterns: []string{"row-end-{any}"}},
		{ID: "grid-flow", Patterns: []string{"grid-flow-{row|col|dense|row-dense|col-dense}"}},
		{ID: "auto-cols", Patterns: []string{"auto-cols-{any}"}},
		{ID: "auto-rows", Patterns: []string{"auto-rows-{any}"}},
		{ID: "gap", Patterns: []string{"gap-{any}"}, Conflicts: []string{"gap-x", "gap-y"}},
		{ID: "gap-x", Patterns: []string{"gap-x-{any}"}},
		{ID: "gap-y", Patterns: []string{"gap-y-{any}"}},
		{ID: "justify-content", Patterns: []string{"justify-{normal|start|end|center|between|around|evenly|stretch}"}},
		{ID: "justify-items", Patterns: []string{"justify-items-{start|end|center|stretch}"}},
		{ID: "justify-self", Patterns: []string{"justify-self-{auto|start|end|center|stretch}"}},
		{ID: "align-content", Patterns: []string{"content-{normal|center|start|end|between|around|evenly|baseline|stretch}"}},
		{ID: "align-items", Patterns: []string{"items-{start|end|center|baseline|stretch}"}},
		{ID: "align-self", Patterns: []string{"self-{auto|start|end|center|stretch|baseline}"}},
		{ID: "place-content", Patterns: []string{"place-content-{center|start|end|between|around|evenly|baseline|stretch}"}},
		{ID: "place-items", Patterns: []string{"place-items-{start|end|center|baseline|stretch}"}},
		{ID: "place-self", Patterns: []string{"place-self-{auto|start|end|center|stretch}"}},

		// Spacing
		{ID: "p", Patterns: []string{"p-{any}"}, Conflicts: []string{"px", "py", "ps", "pe", "pt", "pr", "pb", "pl"}},
		{ID: "px", Patterns: []string{"px-{any}"}, Conflicts: []string{"pr", "pl"}},
		{ID: "py", Patterns: []string{"py-{any}"}, Conflicts: []string{"pt", "pb"}},
		{ID: "ps", Patterns: []string{"ps-{any}"}},
		{ID: "pe", Patterns: []string{"pe-{any}"}},
		{ID: "pt", Patterns: []string{"pt-{any}"}},
		{ID: "pr", Patterns: []string{"pr-{any}"}},
		{ID: "pb", Patterns: []string{"pb-{any}"}},
		{ID: "pl", Patterns: []string{"pl-{any}"}},
		{ID: "m", Patterns: []string{"-?m-{any}"}, Conflicts: []string{"mx", "my", "ms", "me", "mt", "mr", "mb", "ml"}},
		{ID: "mx", Patterns: []string{"-?mx-{any}"}, Conflicts: []string{"mr", "ml"}},
		{ID: "my", Patterns: []string{"-?my-{any}"}, Conflicts: []string{"mt", "mb"}},
		{ID: "ms", Patterns: []string{"-?ms-{any}"}},
		{ID: "me", Patterns: []string{"-?me-{any}"}},
		{ID: "mt", Patterns: []string{"-?mt-{any}"}},
		{ID: "mr", Patterns: []string{"-?mr-{any}"}},
		{ID: "mb", Patterns: []string{"-?mb-{any}"}},
		{ID: "ml", Patterns: []string{"-?ml-{any}"}},
		{ID: "space-x", Patterns: []string{"-?space-x-{any}"}},
		{ID: "space-x-reverse", Patterns: []string{"space-x-reverse"}},
		{ID: "space-y", Patterns: []string{"-?space-y-{any}"}},
		{ID: "space-y-reverse", Patterns: []string{"space-y-reverse"}},

		// Sizing
		{ID: "size", Patterns: []string{"size-{any}"}, Conflicts: []string{"w", "h"}},
		{ID: "w", Patterns: []string{"w-{any}"}},
		{ID: "min-w", Patterns: []string{"min-w-{any}"}},
		{ID: "max-w", Patterns: []string{"max-w-{any}"}},
		{ID: "h", Patterns: []string{"h-{any}"}},
		{ID: "min-h", Patterns: []string{"min-h-{any}"}},
		{ID: "max-h", Patterns: []string{"max-h-{any}"}},

		// Typography
		{ID: "font-size", Patterns: []string{"text-{size}"}, PostfixConflicts: []string{"leading"}},
		{ID: "font-smoothing", Patterns: []string{"antialiased", "subpixel-antialiased"}},
		{ID: "font-style", Patterns: []string{"italic", "not-italic"}},
		{ID: "font-weight", Patterns: []string{"font-{thin|extralight|light|normal|medium|semibold|bold|extrabold|black}", "font-{number}"}},
		{ID: "font-family", Patterns: []string{"font-{any}"}},
		{ID: "fvn-normal", Patterns: []string{"normal-nums"}, Conflicts: []string{"fvn-ordinal", "fvn-slashed-zero", "fvn-figure", "fvn-spacing", "fvn-fraction"}},
		{ID: "fvn-ordinal", Patterns: []string{"ordinal"}, Conflicts: []string{"fvn-normal"}},
		{ID: "fvn-slashed-zero", Patterns: []string{"slashed-zero"}, Conflicts: []string{"fvn-normal"}},
		{ID: "fvn-figure", Patterns: []string{"lining-nums", "oldstyle-nums"}, Conflicts: []string{"fvn-normal"}},
		{ID: "fvn-spacing", Patterns: []string{"proportional-nums", "tabular-nums"}, Conflicts: []string{"fvn-normal"}},
		{ID: "fvn-fraction", Patterns: []string{"diagonal-fractions", "stacked-fractions"}, Conflicts: []string{"fvn-normal"}},
		{ID: "tracking", Patterns: []string{"-?tracking-{any}"}},
		{ID: "line-clamp", Patterns: []string{"line-clamp-{any}"}, Conflicts: []string{"display", "overflow"}},
		{ID: "leading", Patterns: []string{"leading-{any}"}},
		{ID: "list-image", Patterns: []string{"list-image-{any}"}},
		{ID: "list-style-position", Patterns: []string{"list-{inside|outside}"}},
		{ID: "list-style-type", Patterns: []string{"list-{any}"}},
		{ID: "text-alignment", Patterns: []string{"text-{left|center|right|justify|start|end}"}},
		{ID: "placeholder-opacity", Patterns: []string{"placeholder-opacity-{number}"}},
		{ID: "placeholder-color", Patterns: []string{"placeholder-{color}"}},
		{ID: "text-opacity", Patterns: []string{"text-opacity-{number}"}},
		{ID: "text-wrap", Patterns: []string{"text-{wrap|nowrap|balance|pretty}"}},
		{ID: "text-overflow", Patterns: []string{"truncate", "text-ellipsis", "text-clip"}},
		{ID: "text-color", Patterns: []string{"text-{color}"}},
		{ID: "text-decoration", Patterns: []string{"underline", "overline", "line-through", "no-underline"}},
		{ID: "text-decoration-style", Patterns: []string{"decoration-{solid|dashed|dotted|double|wavy}"}},
		{ID: "text-decoration-thickness", Patterns: []string{"decoration-{auto|from-font}", "decoration-{length}"}},
		{ID: "underline-offset", Patterns: []string{"underline-offset-{any}"}},
		{ID: "text-decoration-color", Patterns: []string{"decoration-{color}"}},
		{ID: "text-transform", Patterns: []string{"uppercase", "lowercase", "capitalize", "normal-case"}},
		{ID: "indent", Patterns: []string{"-?indent-{any}"}},
		{ID: "vertical-align", Patterns: []string{"align-{baseline|top|middle|bottom|text-top|text-bottom|sub|super}", "align-{any}"}},
		{ID: "whitespace", Patterns: []string{"whitespace-{normal|nowrap|pre|pre-line|pre-wrap|break-spaces}"}},
		{ID: "break", Patterns: []string{"break-normal", "break-words", "break-all", "break-keep"}},
		{ID: "hyphens", Patterns: []string{"hyphens-{none|manual|auto}"}},
		{ID: "content", Patterns: []string{"content-{any}"}},

		// Backgrounds
		{ID: "bg-attachment", Patterns: []string{"bg-{fixed|local|scroll}"}},
		{ID: "bg-clip", Patterns: []string{"bg-clip-{border|padding|content|text}"}},
		{ID: "bg-opacity", Patterns: []string{"bg-opacity-{number}"}},
		{ID: "bg-origin", Patterns: []string{"bg-origin-{border|padding|content}"}},
		{ID: "bg-position", Patterns: []string{"bg-{bottom|center|left|left-bottom|left-top|right|right-bottom|right-top|top}", "bg-{position}"}},
		{ID: "bg-repeat", Patterns: []string{"bg-repeat", "bg-{no-repeat}", "bg-repeat-{x|y|round|space}"}},
		{ID: "bg-size", Patterns: []string{"bg-{auto|cover|contain}", "bg-{dimension}"}},
		{ID: "bg-image", Patterns: []string{"bg-{none}", "bg-gradient-to-{t|tr|r|br|b|bl|l|tl}", "bg-{image}"}},
		{ID: "bg-blend", Patterns: []string{"bg-blend-{any}"}},
		{ID: "bg-color", Patterns: []string{"bg-{color}"}},
		{ID: "gradient-from-pos", Patterns: []string{"from-{percent}"}},
		{ID: "gradient-via-pos", Patterns: []string{"via-{percent}"}},
		{ID: "gradient-to-pos", Patterns: []string{"to-{percent}"}},
		{ID: "gradient-from", Patterns: []string{"from-{color}"}},
		{ID: "gradient-via", Patterns: []string{"via-{color}"}},
		{ID: "gradient-to", Patterns: []string{"to-{color}"}},

		// Borders
		{ID: "rounded", Patterns: []string{"rounded", "rounded-{any}"}, Conflicts: []string{
			"rounded-s", "rounded-e", "rounded-t", "rounded-r", "rounded-b", "rounded-l",
			"rounded-ss", "rounded-se", "rounded-ee", "rounded-es",
			"rounded-tl", "rounded-tr", "rounded-br", "rounded-bl",
		}},
		{ID: "rounded-s", Patterns: []string{"rounded-s", "rounded-s-{any}"}, Conflicts: []string{"rounded-ss", "rounded-es"}},
		{ID: "rounded-e", Patterns: []string{"rounded-e", "rounded-e-{any}"}, Conflicts: []string{"rounded-se", "rounded-ee"}},
		{ID: "rounded-t", Patterns: []string{"rounded-t", "rounded-t-{any}"}, Conflicts: []string{"rounded-tl", "rounded-tr"}},
		{ID: "rounded-r", Patterns: []string{"rounded-r", "rounded-r-{any}"}, Conflicts: []string{"rounded-tr", "rounded-br"}},
		{ID: "rounded-b", Patterns: []string{"rounded-b", "rounded-b-{any}"}, Conflicts: []string{"rounded-br", "rounded-bl"}},
		{ID: "rounded-l", Patterns: []string{"rounded-l", "rounded-l-{any}"}, Conflicts: []string{"rounded-tl", "rounded-bl"}},
		{ID: "rounded-ss", Patterns: []string{"rounded-ss", "rounded-ss-{any}"}},
		{ID: "rounded-se", Patterns: []string{"rounded-se", "rounded-se-{any}"}},
		{ID: "rounded-ee", Patterns: []string{"rounded-ee", "rounded-ee-{any}"}},
		{ID: "rounded-es", Patterns: []string{"rounded-es", "rounded-es-{any}"}},
		{ID: "rounded-tl", Patterns: []string{"rounded-tl", "rounded-tl-{any}"}},
		{ID: "rounded-tr", Patterns: []string{"rounded-tr", "rounded-tr-{any}"}},
		{ID: "rounded-br", Patterns: []string{"rounded-br", "rounded-br-{any}"}},
		{ID: "rounded-bl", Patterns: []string{"rounded-bl", "rounded-bl-{any}"}},
		{ID: "border-w", Patterns: []string{"border", "border-{length}"}, Conflicts: []string{
			"border-w-s", "border-w-e", "border-w-t", "border-w-r", "border-w-b", "border-w-l", "border-w-x", "border-w-y",
		}},
		{ID: "border-w-x", Patterns: []string{"border-x", "border-x-{length}"}, Conflicts: []string{"border-w-r", "border-w-l"}},
		{ID: "border-w-y", Patterns: []string{"border-y", "border-y-{length}"}, Conflicts: []string{"border-w-t", "border-w-b"}},
		{ID: "border-w-s", Patterns: []string{"border-s", "border-s-{length}"}},
		{ID: "border-w-e", Patterns: []string{"border-e", "border-e-{length}"}},
		{ID: "border-w-t", Patterns: []string{"border-t", "border-t-{length}"}},
		{ID: "border-w-r", Patterns: []string{"border-r", "border-r-{length}"}},
		{ID: "border-w-b", Patterns: []string{"border-b", "border-b-{length}"}},
		{ID: "border-w-l", Patterns: []string{"border-l", "border-l-{length}"}},
		{ID: "border-opacity", Patterns: []string{"border-opacity-{number}"}},
		{ID: "border-style", Patterns: []string{"border-{solid|dashed|dotted|double|none|hidden}"}},
		{ID: "border-collapse", Patterns: []string{"border-{collapse|separate}"}},
		{ID: "border-spacing", Patterns: []string{"border-spacing-{any}"}, Conflicts: []string{"border-spacing-x", "border-spacing-y"}},
		{ID: "border-spacing-x", Patterns: []string{"border-spacing-x-{any}"}},
		{ID: "border-spacing-y", Patterns: []string{"border-spacing-y-{any}"}},
		{ID: "border-color", Patterns: []string{"border-{color}"}, Conflicts: []string{
			"border-color-s", "border-color-e", "border-color-t", "border-color-r", "border-color-b", "border-color-l",
			"border-color-x", "border-color-y",
		}},
		{ID: "border-color-x", Patterns: []string{"border-x-{color}"}, Conflicts: []string{"border-color-r", "border-color-l"}},
		{ID: "border-color-y", Patterns: []string{"border-y-{color}"}, Conflicts: []string{"border-color-t", "border-color-b"}},
		{ID: "border-color-s", Patterns: []string{"border-s-{color}"}},
		{ID: "border-color-e", Patterns: []string{"border-e-{color}"}},
		{ID: "border-color-t", Patterns: []string{"border-t-{color}"}},
		{ID: "border-color-r", Patterns: []string{"border-r-{color}"}},
		{ID: "border-color-b", Patterns: []string{"border-b-{color}"}},
		{ID: "border-color-l", Patterns: []string{"border-l-{color}"}},
		{ID: "divide-x", Patterns: []string{"divide-x", "divide-x-{length}"}},
		{ID: "divide-x-reverse", Patterns: []string{"divide-x-reverse"}},
		{ID: "divide-y", Patterns: []string{"divide-y", "divide-y-{length}"}},
		{ID: "divide-y-reverse", Patterns: []string{"divide-y-reverse"}},
		{ID: "divide-opacity", Patterns: []string{"divide-opacity-{number}"}},
		{ID: "divide-style", Patterns: []string{"divide-{solid|dashed|dotted|double|none}"}},
		{ID: "divide-color", Patterns: []string{"divide-{color}"}},
		{ID: "outline-style", Patterns: []string{"outline", "outline-{none|dashed|dotted|double}"}},
		{ID: "outline-offset", Patterns: []string{"outline-offset-{any}"}},
		{ID: "outline-w", Patterns: []string{"outline-{length}"}},
		{ID: "outline-color", Patterns: []string{"outline-{color}"}},
		{ID: "ring-w", Patterns: []string{"ring", "ring-{length}"}},
		{ID: "ring-w-inset", Patterns: []string{"ring-inset"}},
		{ID: "ring-opacity", Patterns: []string{"ring-opacity-{number}"}},
		{ID: "ring-offset-w", Patterns: []string{"ring-offset-{length}"}},
		{ID: "ring-offset-color", Patterns: []string{"ring-offset-{color}"}},
		{ID: "ring-color", Patterns: []string{"ring-{color}"}},

		// Effects
		{ID: "shadow", Patterns: []string{"shadow", "shadow-{sm|md|lg|xl|2xl|inner|none}"}},
		{ID: "shadow-color", Patterns: []string{"shadow-{color}"}},
		{ID: "opacity", Patterns: []string{"opacity-{any}"}},
		{ID: "mix-blend", Patterns: []string{"mix-blend-{any}"}},

		// Filters
		{ID: "filter", Patterns: []string{"filter", "filter-{none}"}},
		{ID: "blur", Patterns: []string{"blur", "blur-{any}"}},
		{ID: "brightness", Patterns: []string{"brightness-{any}"}},
		{ID: "contrast", Patterns: []string{"contrast-{any}"}},
		{ID: "drop-shadow", Patterns: []string{"drop-shadow", "drop-shadow-{any}"}},
		{ID: "grayscale", Patterns: []string{"grayscale", "grayscale-{any}"}},
		{ID: "hue-rotate", Patterns: []string{"-?hue-rotate-{any}"}},
		{ID: "invert", Patterns: []string{"invert", "invert-{any}"}},
		{ID: "saturate", Patterns: []string{"saturate-{any}"}},
		{ID: "sepia", Patterns: []string{"sepia", "sepia-{any}"}},
		{ID: "backdrop-filter", Patterns: []string{"backdrop-filter", "backdrop-filter-{none}"}},
		{ID: "backdrop-blur", Patterns: []string{"backdrop-blur", "backdrop-blur-{any}"}},
		{ID: "backdrop-brightness", Patterns: []string{"backdrop-brightness-{any}"}},
		{ID: "backdrop-opacity", Patterns: []string{"backdrop-opacity-{any}"}},

		// Tables
		{ID: "table-layout", Patterns: []string{"table-{auto|fixed}"}},
		{ID: "caption", Patterns: []string{"caption-{top|bottom}"}},

		// Transitions and animation
		{ID: "transition", Patterns: []string{"transition", "transition-{none|all|colors|opacity|shadow|transform}"}},
		{ID: "duration", Patterns: []string{"duration-{any}"}},
		{ID: "ease", Patterns: []string{"ease-{any}"}},
		{ID: "delay", Patterns: []string{"delay-{any}"}},
		{ID: "animate", Patterns: []string{"animate-{any}"}},

		// Transforms
		{ID: "transform", Patterns: []string{"transform", "transform-{gpu|none}"}},
		{ID: "scale", Patterns: []string{"scale-{any}"}, Conflicts: []string{"scale-x", "scale-y"}},
		{ID: "scale-x", Patterns: []string{"scale-x-{any}"}},
		{ID: "scale-y", Patterns: []string{"scale-y-{any}"}},
		{ID: "rotate", Patterns: []string{"-?rotate-{any}"}},
		{ID: "translate-x", Patterns: []string{"-?translate-x-{any}"}},
		{ID: "translate-y", Patterns: []string{"-?translate-y-{any}"}},
		{ID: "skew-x", Patterns: []string{"-?skew-x-{any}"}},
		{ID: "skew-y", Patterns: []string{"-?skew-y-{any}"}},
		{ID: "transform-origin", Patterns: []string{"origin-{any}"}},

		// Interactivity
		{ID: "accent", Patterns: []string{"accent-{color}"}},
		{ID: "appearance", Patterns: []string{"appearance-{none|auto}"}},
		{ID: "cursor", Patterns: []string{"cursor-{any}"}},
		{ID: "caret-color", Patterns: []string{"caret-{color}"}},
		{ID: "pointer-events", Patterns: []string{"pointer-events-{none|auto}"}},
		{ID: "resize", Patterns: []string{"resize", "resize-{none|x|y}"}},
		{ID: "scroll-behavior", Patterns: []string{"scroll-{auto|smooth}"}},
		{ID: "scroll-m", Patterns: []string{"-?scroll-m-{any}"}, Conflicts: []string{"scroll-mx", "scroll-my"}},
		{ID: "scroll-mx", Patterns: []string{"-?scroll-mx-{any}"}},
		{ID: "scroll-my", Patterns: []string{"-?scroll-my-{any}"}},
		{ID: "scroll-p", Patterns: []string{"scroll-p-{any}"}, Conflicts: []string{"scroll-px", "scroll-py"}},
		{ID: "scroll-px", Patterns: []string{"scroll-px-{any}"}},
		{ID: "scroll-py", Patterns: []string{"scroll-py-{any}"}},
		{ID: "snap-align", Patterns: []string{"snap-{start|end|center|align-none}"}},
		{ID: "snap-stop", Patterns: []string{"snap-{normal|always}"}},
		{ID: "snap-type", Patterns: []string{"snap-{none|x|y|both}"}},
		{ID: "snap-strictness", Patterns: []string{"snap-{mandatory|proximity}"}},
		{ID: "touch", Patterns: []string{"touch-{auto|none|manipulation}"}, Conflicts: []string{"touch-x", "touch-y", "touch-pz"}},
		{ID: "touch-x", Patterns: []string{"touch-{pan-x|pan-left|pan-right}"}, Conflicts: []string{"touch"}},
		{ID: "touch-y", Patterns: []string{"touch-{pan-y|pan-up|pan-down}"}, Conflicts: []string{"touch"}},
		{ID: "touch-pz", Patterns: []string{"touch-pinch-zoom"}, Conflicts: []string{"touch"}},
		{ID: "select", Patterns: []string{"select-{none|text|all|auto}"}},
		{ID: "will-change", Patterns: []string{"will-change-{any}"}},

		// SVG
		{ID: "fill", Patterns: []string{"fill-{any}"}},
		{ID: "stroke-w", Patterns: []string{"stroke-{number}"}},
		{ID: "stroke", Patterns: []string{"stroke-{color}"}},

		// Accessibility
		{ID: "sr", Patterns: []string{"sr-only", "not-sr-only"}},
		{ID: "forced-color-adjust", Patterns: []string{"forced-color-adjust-{auto|none}"}},
	}
}
