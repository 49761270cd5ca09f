package parameters

// =================================
// Schema selection
// =================================
const (
	// ModernThreshold is the first version using templated JVM arguments.
	ModernThreshold = "1.13"
)

// =================================
// Launcher identity defaults
// =================================
const (
	DefaultLauncherBrand   = "mcKismetLab"
	DefaultLauncherVersion = "v0.5.0"
)

// =================================
// Memory defaults (megabytes)
// =================================
const (
	DefaultMaxMemoryMB = 2048
	DefaultMinMemoryMB = 1024
)

// =================================
// Fixed legacy tokens
// =================================
const (
	// HeapDumpFlag is the Intel driver workaround every legacy launch carries.
	HeapDumpFlag = "-XX:HeapDumpPath=MojangTricksIntelDriversForPerformance_javaw.exe_minecraft.exe.heapdump"
	// SmallStackFlag is added on 32-bit hosts only.
	SmallStackFlag = "-Xss1M"
)

// =================================
// Placeholder keys
// =================================
const (
	KeyClasspath        = "${classpath}"
	KeyNativesDirectory = "${natives_directory}"
	KeyLauncherName     = "${launcher_name}"
	KeyLauncherVersion  = "${launcher_version}"

	KeyAuthPlayerName  = "${auth_player_name}"
	KeyVersionName     = "${version_name}"
	KeyGameDirectory   = "${game_directory}"
	KeyAssetsRoot      = "${assets_root}"
	KeyAssetsIndexName = "${assets_index_name}"
	KeyAuthUUID        = "${auth_uuid}"
	KeyAuthAccessToken = "${auth_access_token}"
	KeyUserType        = "${user_type}"
	KeyVersionType     = "${version_type}"
	KeyUserProperties  = "${user_properties}"

	// emptyUserProperties is substituted for ${user_properties}.
	emptyUserProperties = "{}"
)
