package screens

import (
	"GuardianesDelFuego/internal/nav"
	"GuardianesDelFuego/internal/overlay"
	"GuardianesDelFuego/internal/tui"
)

func init() {
	// Body screens, one per nav.Screen the tab bar can reach.
	tui.RegisterScreen(nav.ScreenHome, func(env tui.Env) tui.ScreenModel { return NewHomeScreen(env) })
	tui.RegisterScreen(nav.ScreenReport, func(env tui.Env) tui.ScreenModel { return NewReportScreen(env) })
	tui.RegisterScreen(nav.ScreenDispatch, func(env tui.Env) tui.ScreenModel { return NewDispatchScreen(env) })
	tui.RegisterScreen(nav.ScreenLearn, func(env tui.Env) tui.ScreenModel { return NewLearnScreen(env) })
	tui.RegisterScreen(nav.ScreenCommunity, func(env tui.Env) tui.ScreenModel { return NewCommunityScreen(env) })
	tui.RegisterScreen(nav.ScreenDataLab, func(env tui.Env) tui.ScreenModel { return NewDataLabScreen(env) })
	tui.RegisterScreen(nav.ScreenAlerts, func(env tui.Env) tui.ScreenModel { return NewAlertsScreen(env) })
	tui.RegisterScreen(nav.ScreenProfile, func(env tui.Env) tui.ScreenModel { return NewProfileScreen(env) })

	// Bottom sheets.
	tui.RegisterSheet(overlay.KindAlert, func(env tui.Env, o overlay.Overlay) tui.ScreenModel { return NewAlertSheet(env, o) })
	tui.RegisterSheet(overlay.KindLesson, func(env tui.Env, o overlay.Overlay) tui.ScreenModel { return NewLessonSheet(env, o) })
	tui.RegisterSheet(overlay.KindCourse, func(env tui.Env, o overlay.Overlay) tui.ScreenModel { return NewCourseSheet(env, o) })
	tui.RegisterSheet(overlay.KindVolunteer, func(env tui.Env, o overlay.Overlay) tui.ScreenModel { return NewVolunteerSheet(env, o) })

	tui.RegisterLogin(func(env tui.Env) tui.ScreenModel { return NewLoginScreen(env) })
}
