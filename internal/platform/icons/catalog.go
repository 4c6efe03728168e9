package icons

//go:generate go run ../../tools/icondocgen -out docs/icon-catalog.md -sprite docs/icon-sprite.svg

// Registered icon identifiers.
const (
	LogoFull          ID = "logo-full"
	Logo              ID = "logo"
	Settings          ID = "settings"
	Close             ID = "close"
	Restart           ID = "restart"
	Info              ID = "info"
	Warning           ID = "warning"
	Error             ID = "error"
	Success           ID = "success"
	Refresh           ID = "refresh"
	ArrowDown         ID = "arrow-down"
	ArrowUp           ID = "arrow-up"
	ArrowDropDown     ID = "arrow-drop-down"
	PlusCircleFill    ID = "plus-circle-fill"
	Clock             ID = "clock"
	Calendar          ID = "calendar"
	Alarm             ID = "alarm"
	Keyboard          ID = "keyboard"
	RemoveCircle      ID = "remove-circle"
	Play              ID = "play"
	PlayCircleOutline ID = "play-circle-outline"
	Chart             ID = "chart"
	Table             ID = "table"
	Code              ID = "code"
	Delete            ID = "delete"
	Plus              ID = "plus"
	Done              ID = "done"
	Visibility        ID = "visibility"
	VisibilityOff     ID = "visibility-off"
	Copy              ID = "copy"
	Drag              ID = "drag"
)

var catalog = []Definition{
	{
		ID:          LogoFull,
		Name:        "Logo Full",
		Description: "Full product wordmark with the stacked-layers mark.",
		ViewBox:     ViewBox{0, 0, 74, 24},
		Paths: []Path{
			{D: "M6.11767 10.4759C6.47736 10.7556 6.91931 10.909 7.37503 10.9121H7.42681C7.90756 10.9047 8.38832 10.7199 8.67677 10.4685C10.1856 9.18921 14.5568 5.18138 14.5568 5.18138C15.7254 4.09438 12.4637 3.00739 7.42681 3H7.36764C2.3308 3.00739 -0.930935 4.09438 0.237669 5.18138C0.237669 5.18138 4.60884 9.18921 6.11767 10.4759ZM8.67677 12.6424C8.31803 12.9248 7.87599 13.0808 7.41941 13.0861H7.37503C6.91845 13.0808 6.47641 12.9248 6.11767 12.6424C5.0822 11.7551 1.38409 8.42018 0.000989555 7.14832V9.07829C0.000989555 9.29273 0.0823481 9.57372 0.222877 9.70682L0.293316 9.7712L0.293344 9.77122C1.33784 10.7258 4.83903 13.9255 6.11767 15.0161C6.47641 15.2985 6.91845 15.4545 7.37503 15.4597H7.41941C7.90756 15.4449 8.38092 15.2601 8.67677 15.0161C9.9859 13.9069 13.6249 10.572 14.5642 9.70682C14.7121 9.57372 14.7861 9.29273 14.7861 9.07829V7.14832C12.7662 8.99804 10.7297 10.8295 8.67677 12.6424ZM7.41941 17.6263C7.87513 17.6232 8.31708 17.4698 8.67677 17.19C10.7298 15.3746 12.7663 13.5407 14.7861 11.6885V13.6259C14.7861 13.8329 14.7121 14.1139 14.5642 14.247C13.6249 15.1196 9.9859 18.4471 8.67677 19.5563C8.38092 19.8077 7.90756 19.9926 7.41941 20H7.37503C6.91931 19.9968 6.47736 19.8435 6.11767 19.5637C4.91427 18.5373 1.74219 15.6364 0.502294 14.5025C0.393358 14.4029 0.299337 14.3169 0.222877 14.247C0.0823481 14.1139 0.000989555 13.8329 0.000989555 13.6259V11.6885C1.38409 12.953 5.0822 16.2953 6.11767 17.1827C6.47641 17.4651 6.91845 17.6211 7.37503 17.6263H7.41941Z"},
			{D: "M34.9996 5L29.1596 19.46H26.7296L20.8896 5H23.0496C23.2829 5 23.4729 5.05667 23.6196 5.17C23.7663 5.28333 23.8763 5.43 23.9496 5.61L27.3596 14.43C27.4729 14.7167 27.5796 15.0333 27.6796 15.38C27.7863 15.72 27.8863 16.0767 27.9796 16.45C28.0596 16.0767 28.1463 15.72 28.2396 15.38C28.3329 15.0333 28.4363 14.7167 28.5496 14.43L31.9396 5.61C31.9929 5.45667 32.0963 5.31667 32.2496 5.19C32.4096 5.06333 32.603 5 32.8297 5H34.9996ZM52.1763 5V19.46H49.8064V10.12C49.8064 9.74667 49.8263 9.34333 49.8663 8.91L45.4963 17.12C45.2897 17.5133 44.973 17.71 44.5463 17.71H44.1663C43.7397 17.71 43.4231 17.5133 43.2164 17.12L38.7963 8.88C38.8163 9.1 38.833 9.31667 38.8463 9.53C38.8597 9.74333 38.8663 9.94 38.8663 10.12V19.46H36.4963V5H38.5263C38.6463 5 38.7497 5.00333 38.8363 5.01C38.923 5.01667 38.9997 5.03333 39.0663 5.06C39.1397 5.08667 39.203 5.13 39.2563 5.19C39.3163 5.25 39.373 5.33 39.4263 5.43L43.7563 13.46C43.8697 13.6733 43.973 13.8933 44.0663 14.12C44.1663 14.3467 44.263 14.58 44.3563 14.82C44.4497 14.5733 44.5464 14.3367 44.6464 14.11C44.7464 13.8767 44.8531 13.6533 44.9664 13.44L49.2363 5.43C49.2897 5.33 49.3463 5.25 49.4063 5.19C49.4663 5.13 49.5297 5.08667 49.5963 5.06C49.6697 5.03333 49.7497 5.01667 49.8363 5.01C49.923 5.00333 50.0264 5 50.1464 5H52.1763ZM61.0626 18.73C61.7426 18.73 62.3492 18.6133 62.8826 18.38C63.4226 18.14 63.8792 17.81 64.2526 17.39C64.6259 16.97 64.9092 16.4767 65.1026 15.91C65.3026 15.3367 65.4026 14.72 65.4026 14.06V5.31H66.4226V14.06C66.4226 14.84 66.2993 15.57 66.0527 16.25C65.806 16.9233 65.4493 17.5133 64.9827 18.02C64.5227 18.52 63.9592 18.9133 63.2926 19.2C62.6326 19.4867 61.8892 19.63 61.0626 19.63C60.2359 19.63 59.4893 19.4867 58.8227 19.2C58.1627 18.9133 57.5992 18.52 57.1326 18.02C56.6726 17.5133 56.3193 16.9233 56.0727 16.25C55.826 15.57 55.7026 14.84 55.7026 14.06V5.31H56.7327V14.05C56.7327 14.71 56.8292 15.3267 57.0226 15.9C57.2226 16.4667 57.506 16.96 57.8727 17.38C58.246 17.8 58.6993 18.13 59.2327 18.37C59.7727 18.61 60.3826 18.73 61.0626 18.73ZM71.4438 19.46H70.4138V5.31H71.4438V19.46Z"},
		},
	},
	{
		ID:          Logo,
		Name:        "Logo",
		Description: "Compact stacked-layers product mark.",
		ViewBox:     ViewBox{0, 0, 15, 17},
		Paths: []Path{
			{D: "M6.11767 7.47586C6.47736 7.75563 6.91931 7.90898 7.37503 7.91213H7.42681C7.90756 7.90474 8.38832 7.71987 8.67677 7.46846C10.1856 6.18921 14.5568 2.18138 14.5568 2.18138C15.7254 1.09438 12.4637 0.00739 7.42681 0H7.36764C2.3308 0.00739 -0.930935 1.09438 0.237669 2.18138C0.237669 2.18138 4.60884 6.18921 6.11767 7.47586ZM8.67677 9.64243C8.31803 9.92483 7.87599 10.0808 7.41941 10.0861H7.37503C6.91845 10.0808 6.47641 9.92483 6.11767 9.64243C5.0822 8.75513 1.38409 5.42018 0.000989555 4.14832V6.07829C0.000989555 6.29273 0.0823481 6.57372 0.222877 6.70682L0.293316 6.7712L0.293344 6.77122C1.33784 7.72579 4.83903 10.9255 6.11767 12.0161C6.47641 12.2985 6.91845 12.4545 7.37503 12.4597H7.41941C7.90756 12.4449 8.38092 12.2601 8.67677 12.0161C9.9859 10.9069 13.6249 7.57198 14.5642 6.70682C14.7121 6.57372 14.7861 6.29273 14.7861 6.07829V4.14832C12.7662 5.99804 10.7297 7.82949 8.67677 9.64243ZM7.41941 14.6263C7.87513 14.6232 8.31708 14.4698 8.67677 14.19C10.7298 12.3746 12.7663 10.5407 14.7861 8.68853V10.6259C14.7861 10.8329 14.7121 11.1139 14.5642 11.247C13.6249 12.1196 9.9859 15.4471 8.67677 16.5563C8.38092 16.8077 7.90756 16.9926 7.41941 17H7.37503C6.91931 16.9968 6.47736 16.8435 6.11767 16.5637C4.91427 15.5373 1.74219 12.6364 0.502294 11.5025C0.393358 11.4029 0.299337 11.3169 0.222877 11.247C0.0823481 11.1139 0.000989555 10.8329 0.000989555 10.6259V8.68853C1.38409 9.95303 5.0822 13.2953 6.11767 14.1827C6.47641 14.4651 6.91845 14.6211 7.37503 14.6263H7.41941Z"},
		},
	},
	{
		ID:          Settings,
		Name:        "Settings",
		Description: "Application settings and configuration.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M19.14 12.94c.04-.3.06-.61.06-.94 0-.32-.02-.64-.07-.94l2.03-1.58c.18-.14.23-.41.12-.61l-1.92-3.32c-.12-.22-.37-.29-.59-.22l-2.39.96c-.5-.38-1.03-.7-1.62-.94l-.36-2.54c-.04-.24-.24-.41-.48-.41h-3.84c-.24 0-.43.17-.47.41l-.36 2.54c-.59.24-1.13.57-1.62.94l-2.39-.96c-.22-.08-.47 0-.59.22L2.74 8.87c-.12.21-.08.47.12.61l2.03 1.58c-.05.3-.09.63-.09.94s.02.64.07.94l-2.03 1.58c-.18.14-.23.41-.12.61l1.92 3.32c.12.22.37.29.59.22l2.39-.96c.5.38 1.03.7 1.62.94l.36 2.54c.05.24.24.41.48.41h3.84c.24 0 .44-.17.47-.41l.36-2.54c.59-.24 1.13-.56 1.62-.94l2.39.96c.22.08.47 0 .59-.22l1.92-3.32c.12-.22.07-.47-.12-.61l-2.01-1.58zM12 15.6c-1.98 0-3.6-1.62-3.6-3.6s1.62-3.6 3.6-3.6 3.6 1.62 3.6 3.6-1.62 3.6-3.6 3.6z"},
		},
	},
	{
		ID:          Close,
		Name:        "Close",
		Description: "Dismiss a dialog, panel, or chip.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M19 6.41 17.59 5 12 10.59 6.41 5 5 6.41 10.59 12 5 17.59 6.41 19 12 13.41 17.59 19 19 17.59 13.41 12z"},
		},
	},
	{
		ID:          Restart,
		Name:        "Restart",
		Description: "Restart or re-run an operation.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M12 5V2L8 6l4 4V7c3.31 0 6 2.69 6 6 0 2.97-2.17 5.43-5 5.91v2.02c3.95-.49 7-3.85 7-7.93 0-4.42-3.58-8-8-8zm-6 8c0-1.65.67-3.15 1.76-4.24L6.34 7.34C4.9 8.79 4 10.79 4 13c0 4.08 3.05 7.44 7 7.93v-2.02c-2.83-.48-5-2.94-5-5.91z"},
		},
	},
	{
		ID:          Info,
		Name:        "Info",
		Description: "Informational notice.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M12 2C6.48 2 2 6.48 2 12s4.48 10 10 10 10-4.48 10-10S17.52 2 12 2zm1 15h-2v-6h2v6zm0-8h-2V7h2v2z"},
		},
	},
	{
		ID:          Warning,
		Name:        "Warning",
		Description: "Non-fatal warning state.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M1 21h22L12 2 1 21zm12-3h-2v-2h2v2zm0-4h-2v-4h2v4z"},
		},
	},
	{
		ID:          Error,
		Name:        "Error",
		Description: "Failed query or error state.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M12 2C6.48 2 2 6.48 2 12s4.48 10 10 10 10-4.48 10-10S17.52 2 12 2zm1 15h-2v-2h2v2zm0-4h-2V7h2v6z"},
		},
	},
	{
		ID:          Success,
		Name:        "Success",
		Description: "Successful completion state.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M12 2C6.48 2 2 6.48 2 12s4.48 10 10 10 10-4.48 10-10S17.52 2 12 2zm-2 15-5-5 1.41-1.41L10 14.17l7.59-7.59L19 8l-9 9z"},
		},
	},
	{
		ID:          Refresh,
		Name:        "Refresh",
		Description: "Reload query results.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M12 6v3l4-4-4-4v3c-4.42 0-8 3.58-8 8 0 1.57.46 3.03 1.24 4.26L6.7 14.8c-.45-.83-.7-1.79-.7-2.8 0-3.31 2.69-6 6-6zm6.76 1.74L17.3 9.2c.44.84.7 1.79.7 2.8 0 3.31-2.69 6-6 6v-3l-4 4 4 4v-3c4.42 0 8-3.58 8-8 0-1.57-.46-3.03-1.24-4.26z"},
		},
	},
	{
		ID:          ArrowDown,
		Name:        "Arrow Down",
		Description: "Expand or move down.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M7.41 8.59 12 13.17l4.59-4.58L18 10l-6 6-6-6 1.41-1.41z"},
		},
	},
	{
		ID:          ArrowUp,
		Name:        "Arrow Up",
		Description: "Collapse or move up.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "m12 8-6 6 1.41 1.41L12 10.83l4.59 4.58L18 14z"},
		},
	},
	{
		ID:          ArrowDropDown,
		Name:        "Arrow Drop Down",
		Description: "Open a dropdown menu.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "m7 10 5 5 5-5z"},
		},
	},
	{
		ID:          PlusCircleFill,
		Name:        "Plus Circle Fill",
		Description: "Add a query or panel.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M12 2C6.48 2 2 6.48 2 12s4.48 10 10 10 10-4.48 10-10S17.52 2 12 2zm5 11h-4v4h-2v-4H7v-2h4V7h2v4h4v2z"},
		},
	},
	{
		ID:          Clock,
		Name:        "Clock",
		Description: "Relative time range selection.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M11.99 2C6.47 2 2 6.48 2 12s4.47 10 9.99 10C17.52 22 22 17.52 22 12S17.52 2 11.99 2zM12 20c-4.42 0-8-3.58-8-8s3.58-8 8-8 8 3.58 8 8-3.58 8-8 8z"},
			{D: "M12.5 7H11v6l5.25 3.15.75-1.23-4.5-2.67z"},
		},
	},
	{
		ID:          Calendar,
		Name:        "Calendar",
		Description: "Absolute date selection.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M20 3h-1V1h-2v2H7V1H5v2H4c-1.1 0-2 .9-2 2v16c0 1.1.9 2 2 2h16c1.1 0 2-.9 2-2V5c0-1.1-.9-2-2-2zm0 18H4V8h16v13z"},
		},
	},
	{
		ID:          Alarm,
		Name:        "Alarm",
		Description: "Auto-refresh interval.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "m22 5.72-4.6-3.86-1.29 1.53 4.6 3.86L22 5.72zM7.88 3.39 6.6 1.86 2 5.71l1.29 1.53 4.59-3.85zM12.5 8H11v6l4.75 2.85.75-1.23-4-2.37V8zM12 4c-4.97 0-9 4.03-9 9s4.02 9 9 9c4.97 0 9-4.03 9-9s-4.03-9-9-9zm0 16c-3.87 0-7-3.13-7-7s3.13-7 7-7 7 3.13 7 7-3.13 7-7 7z"},
		},
	},
	{
		ID:          Keyboard,
		Name:        "Keyboard",
		Description: "Keyboard shortcuts.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M20 5H4c-1.1 0-1.99.9-1.99 2L2 17c0 1.1.9 2 2 2h16c1.1 0 2-.9 2-2V7c0-1.1-.9-2-2-2zm-9 3h2v2h-2V8zm0 3h2v2h-2v-2zM8 8h2v2H8V8zm0 3h2v2H8v-2zm-1 2H5v-2h2v2zm0-3H5V8h2v2zm9 7H8v-2h8v2zm0-4h-2v-2h2v2zm0-3h-2V8h2v2zm3 3h-2v-2h2v2zm0-3h-2V8h2v2z"},
		},
	},
	{
		ID:          RemoveCircle,
		Name:        "Remove Circle",
		Description: "Remove a query or series.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M12 2C6.48 2 2 6.48 2 12s4.48 10 10 10 10-4.48 10-10S17.52 2 12 2zm5 11H7v-2h10v2z"},
		},
	},
	{
		ID:          Play,
		Name:        "Play",
		Description: "Execute a query.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M8 5v14l11-7z"},
		},
	},
	{
		ID:          PlayCircleOutline,
		Name:        "Play Circle Outline",
		Description: "Execute a query (outlined).",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "m10 16.5 6-4.5-6-4.5v9zM12 2C6.48 2 2 6.48 2 12s4.48 10 10 10 10-4.48 10-10S17.52 2 12 2zm0 18c-4.41 0-8-3.59-8-8s3.59-8 8-8 8 3.59 8 8-3.59 8-8 8z"},
		},
	},
	{
		ID:          Chart,
		Name:        "Chart",
		Description: "Graph view of results.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "m3.5 18.49 6-6.01 4 4L22 6.92l-1.41-1.41-7.09 7.97-4-4L2 16.99z"},
		},
	},
	{
		ID:          Table,
		Name:        "Table",
		Description: "Table view of results.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M10 10.02h5V21h-5zM17 21h3c1.1 0 2-.9 2-2v-9h-5v11zm3-18H5c-1.1 0-2 .9-2 2v3h19V5c0-1.1-.9-2-2-2zM3 19c0 1.1.9 2 2 2h3V10H3v9z"},
		},
	},
	{
		ID:          Code,
		Name:        "Code",
		Description: "Raw JSON view of results.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M9.4 16.6 4.8 12l4.6-4.6L8 6l-6 6 6 6 1.4-1.4zm5.2 0 4.6-4.6-4.6-4.6L16 6l6 6-6 6-1.4-1.4z"},
		},
	},
	{
		ID:          Delete,
		Name:        "Delete",
		Description: "Delete an entry.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M6 19c0 1.1.9 2 2 2h8c1.1 0 2-.9 2-2V7H6v12zM19 4h-3.5l-1-1h-5l-1 1H5v2h14V4z"},
		},
	},
	{
		ID:          Plus,
		Name:        "Plus",
		Description: "Add an entry.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M19 13h-6v6h-2v-6H5v-2h6V5h2v6h6v2z"},
		},
	},
	{
		ID:          Done,
		Name:        "Done",
		Description: "Confirm or mark complete.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M8.9999 14.7854L18.8928 4.8925C19.0803 4.70497 19.3347 4.59961 19.5999 4.59961C19.8651 4.59961 20.1195 4.70497 20.307 4.8925L21.707 6.2925C22.0975 6.68303 22.0975 7.31619 21.707 7.70672L9.70701 19.7067C9.31648 20.0972 8.68332 20.0972 8.2928 19.7067L2.6928 14.1067C2.50526 13.9192 2.3999 13.6648 2.3999 13.3996C2.3999 13.1344 2.50526 12.88 2.6928 12.6925L4.0928 11.2925C4.48332 10.902 5.11648 10.902 5.50701 11.2925L8.9999 14.7854Z"},
		},
	},
	{
		ID:          Visibility,
		Name:        "Visibility",
		Description: "Show a series or value.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M12 4.5C7 4.5 2.73 7.61 1 12c1.73 4.39 6 7.5 11 7.5s9.27-3.11 11-7.5c-1.73-4.39-6-7.5-11-7.5zM12 17c-2.76 0-5-2.24-5-5s2.24-5 5-5 5 2.24 5 5-2.24 5-5 5zm0-8c-1.66 0-3 1.34-3 3s1.34 3 3 3 3-1.34 3-3-1.34-3-3-3z"},
		},
	},
	{
		ID:          VisibilityOff,
		Name:        "Visibility Off",
		Description: "Hide a series or value.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M12 7c2.76 0 5 2.24 5 5 0 .65-.13 1.26-.36 1.83l2.92 2.92c1.51-1.26 2.7-2.89 3.43-4.75-1.73-4.39-6-7.5-11-7.5-1.4 0-2.74.25-3.98.7l2.16 2.16C10.74 7.13 11.35 7 12 7zM2 4.27l2.28 2.28.46.46C3.08 8.3 1.78 10.02 1 12c1.73 4.39 6 7.5 11 7.5 1.55 0 3.03-.3 4.38-.84l.42.42L19.73 22 21 20.73 3.27 3 2 4.27zM7.53 9.8l1.55 1.55c-.05.21-.08.43-.08.65 0 1.66 1.34 3 3 3 .22 0 .44-.03.65-.08l1.55 1.55c-.67.33-1.41.53-2.2.53-2.76 0-5-2.24-5-5 0-.79.2-1.53.53-2.2zm4.31-.78 3.15 3.15.02-.16c0-1.66-1.34-3-3-3l-.17.01z"},
		},
	},
	{
		ID:          Copy,
		Name:        "Copy",
		Description: "Copy to clipboard.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M16 1H4c-1.1 0-2 .9-2 2v14h2V3h12V1zm3 4H8c-1.1 0-2 .9-2 2v14c0 1.1.9 2 2 2h11c1.1 0 2-.9 2-2V7c0-1.1-.9-2-2-2zm0 16H8V7h11v14z"},
		},
	},
	{
		ID:          Drag,
		Name:        "Drag",
		Description: "Drag handle for reordering.",
		ViewBox:     ViewBox{0, 0, 24, 24},
		Paths: []Path{
			{D: "M20 9H4v2h16V9zM4 15h16v-2H4v2z"},
		},
	},
}

var defaultRegistry = MustNew(catalog...)

// Default returns the process-wide registry of compiled-in icons.
func Default() *Registry {
	return defaultRegistry
}

// IDs returns every compiled-in identifier in catalog order.
func IDs() []ID {
	return defaultRegistry.IDs()
}

// Get returns the compiled-in definition for id.
func Get(id ID) (Definition, error) {
	return defaultRegistry.Get(id)
}

// ParseID normalizes and validates an identifier against the compiled-in set.
func ParseID(raw string) (ID, error) {
	return defaultRegistry.ParseID(raw)
}

// Render resolves a compiled-in icon with opts.
func Render(id ID, opts Options) (Element, error) {
	return defaultRegistry.Render(id, opts)
}

// Catalog returns a copy of the compiled-in icon definitions.
func Catalog() []Definition {
	return defaultRegistry.Definitions()
}

// Sprite returns the sprite sheet for the compiled-in icons.
func Sprite() string {
	return defaultRegistry.Sprite()
}

// CatalogMarkdown renders the compiled-in icon catalog as markdown.
func CatalogMarkdown() string {
	return defaultRegistry.CatalogMarkdown()
}
