package materials

// refractoryTs is the fixed temperature grid, K, the refractory k and
// Cp tables are tabulated on.
var refractoryTs = [5]float64{673.15, 873.15, 1073.15, 1273.15, 1473.15}

type refractoryEntry struct {
	rho float64
	k   [5]float64
	cp  [5]float64
}

// Refractory and insulating material data from the VDI Heat Atlas.
var refractories = map[string]refractoryEntry{
	"Silica": {rho: 1820.0, k: [5]float64{1.2, 1.36, 1.51, 1.64, 1.76}, cp: [5]float64{915.0, 944.0, 961.0, 969.0, 979.0}},
	"Silica special": {rho: 1910.0, k: [5]float64{1.55, 1.76, 1.95, 2.12, 2.28}, cp: [5]float64{915.0, 944.0, 961.0, 970.0, 980.0}},
	"Fused silica": {rho: 1940.0, k: [5]float64{1.44, 1.53, 1.61, 1.67, 1.73}, cp: [5]float64{917.0, 946.0, 963.0, 972.0, 982.0}},
	"Fireclay": {rho: 2150.0, k: [5]float64{1.05, 1.1, 1.15, 1.18, 1.22}, cp: [5]float64{956.0, 997.0, 1021.0, 1037.0, 1054.0}},
	"High-duty fireclay": {rho: 2320.0, k: [5]float64{1.2, 1.27, 1.33, 1.38, 1.42}, cp: [5]float64{958.0, 999.0, 1024.0, 1040.0, 1058.0}},
	"Sillimanite": {rho: 2530.0, k: [5]float64{1.66, 1.76, 1.84, 1.92, 1.98}, cp: [5]float64{978.0, 1024.0, 1052.0, 1072.0, 1093.0}},
	"Mullite": {rho: 2540.0, k: [5]float64{1.45, 1.52, 1.58, 1.63, 1.67}, cp: [5]float64{987.0, 1035.0, 1065.0, 1087.0, 1109.0}},
	"Corundum 90%": {rho: 2830.0, k: [5]float64{2.0, 2.1, 2.19, 2.27, 2.33}, cp: [5]float64{993.0, 1043.0, 1072.0, 1095.0, 1118.0}},
	"Bauxite": {rho: 2760.0, k: [5]float64{2.06, 2.03, 2.02, 2.0, 1.99}, cp: [5]float64{994.0, 1045.0, 1077.0, 1100.0, 1124.0}},
	"Corundum 99%": {rho: 2830.0, k: [5]float64{4.97, 4.36, 3.93, 3.6, 3.35}, cp: [5]float64{1011.0, 1066.0, 1099.0, 1124.0, 1150.0}},
	"Corundum Spinel": {rho: 3100.0, k: [5]float64{3.01, 3.02, 3.03, 3.04, 3.05}, cp: [5]float64{1013.0, 1067.0, 1100.0, 1126.0, 1152.0}},
	"ACr 90": {rho: 3180.0, k: [5]float64{4.2, 3.81, 3.52, 3.3, 3.12}, cp: [5]float64{782.0, 794.0, 806.0, 816.0, 825.0}},
	"ACrZ 20": {rho: 3780.0, k: [5]float64{2.4, 2.33, 2.27, 2.22, 2.18}, cp: [5]float64{772.0, 789.0, 804.0, 814.0, 825.0}},
	"ACrZ 60": {rho: 3200.0, k: [5]float64{3.8, 3.4, 3.11, 2.89, 2.71}, cp: [5]float64{905.0, 945.0, 970.0, 990.0, 1010.0}},
	"Magnesite Chrome": {rho: 3060.0, k: [5]float64{3.5, 3.27, 3.1, 2.96, 2.85}, cp: [5]float64{1004.0, 1043.0, 1079.0, 1110.0, 1138.0}},
	"Magnesia": {rho: 3000.0, k: [5]float64{7.5, 6.23, 5.37, 4.75, 4.28}, cp: [5]float64{1047.0, 1088.0, 1125.0, 1158.0, 1188.0}},
	"Magnesite Spinel": {rho: 2850.0, k: [5]float64{3.8, 3.44, 3.18, 2.98, 2.82}, cp: [5]float64{1050.0, 1093.0, 1131.0, 1164.0, 1194.0}},
	"Magnesite Graphite H15": {rho: 2980.0, k: [5]float64{9.96, 8.46, 7.44, 6.68, 6.1}, cp: [5]float64{1061.0, 1117.0, 1168.0, 1215.0, 1258.0}},
	"Dolomite P10": {rho: 2970.0, k: [5]float64{4.17, 3.99, 3.92, 3.75, 3.66}, cp: [5]float64{950.0, 988.0, 1022.0, 1051.0, 1078.0}},
	"Sillimanite P5": {rho: 2740.0, k: [5]float64{1.5, 1.5, 1.5, 1.5, 1.5}, cp: [5]float64{986.0, 1037.0, 1070.0, 1095.0, 1120.0}},
	"Bauxite P5": {rho: 2830.0, k: [5]float64{2.9, 2.67, 2.49, 2.36, 2.25}, cp: [5]float64{1000.0, 1056.0, 1092.0, 1121.0, 1149.0}},
	"Corundum P10": {rho: 3020.0, k: [5]float64{5.49, 5.19, 4.96, 4.78, 4.62}, cp: [5]float64{1020.0, 1083.0, 1126.0, 1160.0, 1195.0}},
	"Magnesite P5": {rho: 2920.0, k: [5]float64{5.05, 4.53, 4.15, 3.86, 3.63}, cp: [5]float64{1050.0, 1097.0, 1139.0, 1177.0, 1211.0}},
	"Zirconia": {rho: 4950.0, k: [5]float64{1.63, 1.54, 1.48, 1.43, 1.38}, cp: [5]float64{624.0, 668.0, 698.0, 718.0, 737.0}},
	"Zircon": {rho: 3940.0, k: [5]float64{2.67, 2.49, 2.35, 2.24, 2.15}, cp: [5]float64{708.0, 747.0, 773.0, 788.0, 804.0}},
	"AZS 41": {rho: 4000.0, k: [5]float64{4.55, 4.17, 4.25, 4.85, 5.4}, cp: [5]float64{831.0, 878.0, 908.0, 929.0, 950.0}},
	"AZS 33": {rho: 3720.0, k: [5]float64{5.17, 4.42, 4.0, 4.45, 5.4}, cp: [5]float64{861.0, 908.0, 938.0, 958.0, 980.0}},
	"a/b-Alumina": {rho: 3200.0, k: [5]float64{4.78, 4.45, 4.3, 5.0, 6.05}, cp: [5]float64{989.0, 1044.0, 1080.0, 1107.0, 1133.0}},
	"SIC 40%": {rho: 2400.0, k: [5]float64{4.2, 4.41, 4.58, 4.73, 4.86}, cp: [5]float64{993.0, 1043.0, 1072.0, 1095.0, 1118.0}},
	"SIC 70%": {rho: 2600.0, k: [5]float64{7.0, 6.81, 6.67, 6.55, 6.45}, cp: [5]float64{998.0, 1049.0, 1079.0, 1103.0, 1126.0}},
	"SIC 90%": {rho: 2680.0, k: [5]float64{18.6, 17.55, 16.76, 16.14, 15.62}, cp: [5]float64{1005.0, 1058.0, 1090.0, 1115.0, 1140.0}},
	"L1260": {rho: 490.0, k: [5]float64{0.14, 0.16, 0.18, 0.2, 0.22}, cp: [5]float64{942.0, 979.0, 1002.0, 1017.0, 1033.0}},
	"L1400": {rho: 790.0, k: [5]float64{0.27, 0.3, 0.32, 0.34, 0.36}, cp: [5]float64{954.0, 994.0, 1018.0, 1034.0, 1050.0}},
	"L1540": {rho: 890.0, k: [5]float64{0.32, 0.35, 0.38, 0.41, 0.43}, cp: [5]float64{979.0, 1026.0, 1054.0, 1075.0, 1096.0}},
	"L1760": {rho: 1270.0, k: [5]float64{0.45, 0.47, 0.49, 0.51, 0.53}, cp: [5]float64{991.0, 1040.0, 1070.0, 1092.0, 1114.0}},
	"L1870": {rho: 1440.0, k: [5]float64{1.5, 1.34, 1.23, 1.14, 1.07}, cp: [5]float64{1011.0, 1066.0, 1099.0, 1124.0, 1150.0}},
	"Carbon, anthracite": {rho: 1540.0, k: [5]float64{7.0, 8.51, 9.95, 11.33, 12.65}, cp: [5]float64{1106.0, 1240.0, 1362.0, 1474.0, 1581.0}},
	"Carbon, graphite": {rho: 1550.0, k: [5]float64{67.0, 60.67, 56.06, 52.01, 49.46}, cp: [5]float64{1108.0, 1244.0, 1366.0, 1479.0, 1588.0}},
}
